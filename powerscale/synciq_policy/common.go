package synciqpolicy

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func getSyncPolicy(ctx context.Context, c *client.Client, id string) (*SyncPolicyDto, error) {
	resp := &GetSyncPolicyResponse{}
	if _, err := c.Get(ctx, client.ApiPath.SyncPolicyWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Policies) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.SyncPolicyWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("SyncIQ policy %s not found", id)),
		}
	}

	return &resp.Policies[0], nil
}

func expandSyncPolicySpec(d *schema.ResourceData) SyncPolicySpec {
	spec := SyncPolicySpec{
		Name:           d.Get("name").(string),
		Action:         d.Get("action").(string),
		SourceRootPath: d.Get("source_root_path").(string),
		TargetHost:     d.Get("target_host").(string),
		TargetPath:     d.Get("target_path").(string),
	}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	if v, ok := util.GetOkExists(d, "enabled"); ok {
		spec.Enabled = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "schedule"); ok {
		spec.Schedule = ptr.To(v.(string))
	}

	if v, ok := util.GetOkExists(d, "job_delay"); ok {
		spec.JobDelay = ptr.To(v.(int))
	}

	if v, ok := util.GetOkExists(d, "source_include_directories"); ok {
		spec.SourceIncludeDirectories = util.ExpandStringSet(v)
	}

	if v, ok := util.GetOkExists(d, "source_exclude_directories"); ok {
		spec.SourceExcludeDirectories = util.ExpandStringSet(v)
	}

	if v, ok := util.GetOkExists(d, "target_snapshot_archive"); ok {
		spec.TargetSnapshotArchive = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "target_certificate_id"); ok {
		spec.TargetCertificateID = ptr.To(v.(string))
	}

	return spec
}

func stringChanged(desired string, current string) *string {
	if desired != "" && desired != current {
		return ptr.To(desired)
	}
	return nil
}

func optionalStringChanged(desired *string, current string) *string {
	if desired != nil && *desired != current {
		return desired
	}
	return nil
}

// buildSyncPolicyUpdate diffs desired against current. Include and exclude
// directories are sets.
func buildSyncPolicyUpdate(current SyncPolicyDto, desired SyncPolicySpec) (UpdateSyncPolicyRequest, bool) {
	update := UpdateSyncPolicyRequest{
		Name:                stringChanged(desired.Name, current.Name),
		Action:              stringChanged(desired.Action, current.Action),
		SourceRootPath:      stringChanged(desired.SourceRootPath, current.SourceRootPath),
		TargetHost:          stringChanged(desired.TargetHost, current.TargetHost),
		TargetPath:          stringChanged(desired.TargetPath, current.TargetPath),
		Description:         optionalStringChanged(desired.Description, current.Description),
		Schedule:            optionalStringChanged(desired.Schedule, current.Schedule),
		TargetCertificateID: optionalStringChanged(desired.TargetCertificateID, current.TargetCertificateID),
	}

	if desired.Enabled != nil && *desired.Enabled != current.Enabled {
		update.Enabled = desired.Enabled
	}

	if desired.JobDelay != nil && *desired.JobDelay != current.JobDelay {
		update.JobDelay = desired.JobDelay
	}

	if desired.TargetSnapshotArchive != nil && *desired.TargetSnapshotArchive != current.TargetSnapshotArchive {
		update.TargetSnapshotArchive = desired.TargetSnapshotArchive
	}

	if desired.SourceIncludeDirectories != nil && !util.StringSetsEqual(desired.SourceIncludeDirectories, current.SourceIncludeDirectories) {
		update.SourceIncludeDirectories = ptr.To(desired.SourceIncludeDirectories)
	}

	if desired.SourceExcludeDirectories != nil && !util.StringSetsEqual(desired.SourceExcludeDirectories, current.SourceExcludeDirectories) {
		update.SourceExcludeDirectories = ptr.To(desired.SourceExcludeDirectories)
	}

	return update, update != UpdateSyncPolicyRequest{}
}
