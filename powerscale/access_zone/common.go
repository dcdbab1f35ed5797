package accesszone

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func getAccessZone(ctx context.Context, c *client.Client, name string) (*AccessZoneDto, error) {
	resp := &GetAccessZoneResponse{}
	if _, err := c.Get(ctx, client.ApiPath.ZoneWithId(name), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Zones) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.ZoneWithId(name),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("access zone %s not found", name)),
		}
	}

	return &resp.Zones[0], nil
}

func expandAccessZoneSpec(d *schema.ResourceData) AccessZoneSpec {
	spec := AccessZoneSpec{
		Path: d.Get("path").(string),
	}

	if v, ok := d.GetOk("auth_providers"); ok {
		spec.AuthProviders = util.ExpandToStringSlice(v.([]interface{}))
	}

	if v, ok := d.GetOk("user_mapping_rules"); ok {
		spec.UserMappingRules = util.ExpandToStringSlice(v.([]interface{}))
	}

	return spec
}

// buildAccessZoneUpdate returns the fields of desired that differ from
// current. Auth providers are ordered, so order changes are updates.
func buildAccessZoneUpdate(current AccessZoneDto, desired AccessZoneSpec) (UpdateAccessZoneRequest, bool) {
	update := UpdateAccessZoneRequest{}
	changed := false

	if desired.Path != "" && desired.Path != current.Path {
		update.Path = ptr.To(desired.Path)
		changed = true
	}

	if desired.AuthProviders != nil && !util.StringSlicesEqual(desired.AuthProviders, current.AuthProviders) {
		update.AuthProviders = desired.AuthProviders
		changed = true
	}

	if desired.UserMappingRules != nil && !util.StringSlicesEqual(desired.UserMappingRules, current.UserMappingRules) {
		update.UserMappingRules = desired.UserMappingRules
		changed = true
	}

	return update, changed
}

func setAccessZoneState(d *schema.ResourceData, zone *AccessZoneDto) {
	d.Set("name", zone.Name)
	d.Set("path", zone.Path)
	d.Set("groupnet", zone.Groupnet)
	d.Set("auth_providers", zone.AuthProviders)
	d.Set("user_mapping_rules", zone.UserMappingRules)
	d.Set("zone_id", zone.ZoneID)
	d.Set("system", zone.System)
}
