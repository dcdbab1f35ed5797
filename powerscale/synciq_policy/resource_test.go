package synciqpolicy

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

const policyID = "0f3a8d2bb04dc4f2b8d4c6a1f0f2e3d4"

func policy() SyncPolicyDto {
	return SyncPolicyDto{
		ID:                       policyID,
		Name:                     "projects-dr",
		Action:                   "sync",
		SourceRootPath:           "/ifs/data/projects",
		TargetHost:               "dr.example.com",
		TargetPath:               "/ifs/dr/projects",
		Enabled:                  true,
		Schedule:                 "every day at 22:00",
		SourceExcludeDirectories: []string{"/ifs/data/projects/tmp", "/ifs/data/projects/cache"},
	}
}

func TestBuildSyncPolicyUpdate(t *testing.T) {
	_, changed := buildSyncPolicyUpdate(policy(), SyncPolicySpec{
		Name:                     "projects-dr",
		Action:                   "sync",
		SourceRootPath:           "/ifs/data/projects",
		TargetHost:               "dr.example.com",
		TargetPath:               "/ifs/dr/projects",
		Enabled:                  ptr.To(true),
		SourceExcludeDirectories: []string{"/ifs/data/projects/cache", "/ifs/data/projects/tmp"},
	})
	assert.False(t, changed)

	update, changed := buildSyncPolicyUpdate(policy(), SyncPolicySpec{
		Name:     "projects-dr",
		Schedule: ptr.To(""),
		Enabled:  ptr.To(false),
	})
	assert.True(t, changed)
	assert.Equal(t, UpdateSyncPolicyRequest{Schedule: ptr.To(""), Enabled: ptr.To(false)}, update)
}

func TestResourceSyncPolicyCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncPolicies, http.StatusCreated, map[string]any{"id": policyID})
	srv.JSON(http.MethodGet, client.ApiPath.SyncPolicyWithId(policyID), http.StatusOK, GetSyncPolicyResponse{Policies: []SyncPolicyDto{policy()}})

	d := schema.TestResourceDataRaw(t, ResourceSyncPolicy().Schema, map[string]interface{}{
		"name":             "projects-dr",
		"action":           "sync",
		"source_root_path": "/ifs/data/projects",
		"target_host":      "dr.example.com",
		"target_path":      "/ifs/dr/projects",
		"schedule":         "every day at 22:00",
	})

	diags := resourceSyncPolicyCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, policyID, d.Id())
	assert.Equal(t, 2, d.Get("source_exclude_directories").(*schema.Set).Len())

	posts := srv.Requests(http.MethodPost, client.ApiPath.SyncPolicies)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"name": "projects-dr",
		"action": "sync",
		"source_root_path": "/ifs/data/projects",
		"target_host": "dr.example.com",
		"target_path": "/ifs/dr/projects",
		"schedule": "every day at 22:00"
	}`, string(posts[0].Body))
}

func TestResourceSyncPolicyUpdate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SyncPolicyWithId(policyID), http.StatusOK, GetSyncPolicyResponse{Policies: []SyncPolicyDto{policy()}})
	srv.Status(http.MethodPut, client.ApiPath.SyncPolicyWithId(policyID), http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceSyncPolicy().Schema, map[string]interface{}{
		"name":             "projects-dr",
		"action":           "copy",
		"source_root_path": "/ifs/data/projects",
		"target_host":      "dr.example.com",
		"target_path":      "/ifs/dr/projects",
	})
	d.SetId(policyID)

	diags := resourceSyncPolicyUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.SyncPolicyWithId(policyID))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"action":"copy"}`, string(puts[0].Body))
}

func TestResourceSyncPolicyUpdateFailure(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SyncPolicyWithId(policyID), http.StatusOK, GetSyncPolicyResponse{Policies: []SyncPolicyDto{policy()}})
	srv.Error(http.MethodPut, client.ApiPath.SyncPolicyWithId(policyID), http.StatusBadRequest, "Invalid schedule")

	d := schema.TestResourceDataRaw(t, ResourceSyncPolicy().Schema, map[string]interface{}{
		"name":             "projects-dr",
		"action":           "sync",
		"source_root_path": "/ifs/data/projects",
		"target_host":      "dr.example.com",
		"target_path":      "/ifs/dr/projects",
		"schedule":         "sometimes",
	})
	d.SetId(policyID)

	diags := resourceSyncPolicyUpdate(context.Background(), d, srv.Meta(t))
	require.True(t, diags.HasError())
	assert.Equal(t, "Error updating powerscale_synciq_policy "+policyID+": Invalid schedule", diags[0].Summary)
}
