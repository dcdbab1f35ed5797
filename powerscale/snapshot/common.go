package snapshot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func getSnapshot(ctx context.Context, c *client.Client, id string) (*SnapshotDto, error) {
	resp := &GetSnapshotResponse{}
	if _, err := c.Get(ctx, client.ApiPath.SnapshotWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Snapshots) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.SnapshotWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("snapshot %s not found", id)),
		}
	}

	return &resp.Snapshots[0], nil
}

// parseExpires converts an RFC3339 timestamp to Unix seconds.
func parseExpires(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("expires must be an RFC3339 timestamp: %w", err)
	}

	return ptr.To(t.Unix()), nil
}

func formatExpires(v *int64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return time.Unix(*v, 0).UTC().Format(time.RFC3339)
}

func expandSnapshotSpec(d *schema.ResourceData) (SnapshotSpec, error) {
	spec := SnapshotSpec{
		Name: d.Get("name").(string),
	}

	if v, ok := util.GetOkExists(d, "alias"); ok {
		spec.Alias = ptr.To(v.(string))
	}

	expires, err := parseExpires(d.Get("expires").(string))
	if err != nil {
		return spec, err
	}
	spec.Expires = expires

	return spec, nil
}

func buildSnapshotUpdate(current SnapshotDto, desired SnapshotSpec) (UpdateSnapshotRequest, bool) {
	update := UpdateSnapshotRequest{}
	changed := false

	if desired.Name != "" && desired.Name != current.Name {
		update.Name = ptr.To(desired.Name)
		changed = true
	}

	if desired.Alias != nil && *desired.Alias != current.Alias {
		update.Alias = desired.Alias
		changed = true
	}

	if desired.Expires != nil && *desired.Expires != ptr.Deref(current.Expires, 0) {
		update.Expires = desired.Expires
		changed = true
	}

	return update, changed
}

func validateExpires(v interface{}, k string) ([]string, []error) {
	if _, err := parseExpires(v.(string)); err != nil {
		return nil, []error{fmt.Errorf("%q: %w", k, err)}
	}
	return nil, nil
}
