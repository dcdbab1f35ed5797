package synciqjob

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

func job(state string) GetSyncJobResponse {
	return GetSyncJobResponse{Jobs: []SyncJobDto{{
		ID:               "nightly",
		PolicyName:       "nightly",
		Action:           "run",
		State:            state,
		FilesTransferred: 12,
		BytesTransferred: 4096,
	}}}
}

func TestTransitionStates(t *testing.T) {
	pending, targets := transitionStates(JobStatePaused)
	assert.Contains(t, pending, JobStateRunning)
	assert.ElementsMatch(t, []string{JobStatePaused, JobStateFinished}, targets)

	pending, targets = transitionStates(JobStateRunning)
	assert.Contains(t, pending, JobStatePaused)
	assert.Contains(t, targets, JobStateFinished)

	_, targets = transitionStates(JobStateCanceled)
	assert.ElementsMatch(t, []string{JobStateCanceled, JobStateFinished}, targets)
}

func TestResourceSyncJobCreateWaitForCompletion(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncJobs, http.StatusCreated, map[string]any{"id": "nightly"})

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name":         "nightly",
		"wait_for_completion": true,
	})

	diags := resourceSyncJobCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "nightly", d.Id())
	assert.Equal(t, JobStateFinished, d.Get("job_state"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.SyncJobs)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"id":"nightly","action":"run"}`, string(posts[0].Body))
	assert.Empty(t, srv.Requests(http.MethodPut, client.ApiPath.SyncJobWithId("nightly")))
}

func TestResourceSyncJobCreatePaused(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncJobs, http.StatusCreated, map[string]any{"id": "nightly"})
	srv.Status(http.MethodPut, client.ApiPath.SyncJobWithId("nightly"), http.StatusNoContent)
	srv.JSON(http.MethodGet, client.ApiPath.SyncJobWithId("nightly"), http.StatusOK, job(JobStatePaused))

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
		"action":      "test",
		"state":       "paused",
	})

	diags := resourceSyncJobCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, JobStatePaused, d.Get("job_state"))
	assert.Equal(t, 4096, d.Get("bytes_transferred"))

	puts := srv.Requests(http.MethodPut, client.ApiPath.SyncJobWithId("nightly"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"state":"paused"}`, string(puts[0].Body))
}

func TestResourceSyncJobPauseAfterJobFinished(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncJobs, http.StatusCreated, map[string]any{"id": "nightly"})
	srv.Status(http.MethodPut, client.ApiPath.SyncJobWithId("nightly"), http.StatusNoContent)
	srv.JSON(http.MethodGet, client.ApiPath.SyncJobWithId("nightly"), http.StatusOK, job(JobStateFinished))

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
		"state":       "paused",
	})

	diags := resourceSyncJobCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, JobStateFinished, d.Get("job_state"))
}

func TestResourceSyncJobCreateFailedJob(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncJobs, http.StatusCreated, map[string]any{"id": "nightly"})
	srv.JSON(http.MethodGet, client.ApiPath.SyncJobWithId("nightly"), http.StatusOK, job(JobStateFailed))

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
	})

	diags := resourceSyncJobCreate(context.Background(), d, srv.Meta(t))
	require.True(t, diags.HasError())
	assert.Contains(t, diags[0].Summary, "failed")
}

func TestResourceSyncJobReadEndedJob(t *testing.T) {
	srv := fakeonefs.New(t)

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
	})
	d.SetId("nightly")

	diags := resourceSyncJobRead(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "nightly", d.Id())
	assert.Equal(t, JobStateFinished, d.Get("job_state"))
}

func TestResourceSyncJobDeleteCancelsActiveJob(t *testing.T) {
	srv := fakeonefs.New(t)

	canceled := false
	srv.Handle(http.MethodGet, client.ApiPath.SyncJobWithId("nightly"), func(w http.ResponseWriter, r *http.Request, _ []byte) {
		if canceled {
			fakeonefs.WriteError(w, http.StatusNotFound, "AEC_NOT_FOUND", "job not found")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[{"id":"nightly","policy_name":"nightly","state":"running"}]}`))
	})
	srv.Handle(http.MethodPut, client.ApiPath.SyncJobWithId("nightly"), func(w http.ResponseWriter, r *http.Request, _ []byte) {
		canceled = true
		w.WriteHeader(http.StatusNoContent)
	})

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
	})
	d.SetId("nightly")

	diags := resourceSyncJobDelete(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.SyncJobWithId("nightly"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"state":"canceled"}`, string(puts[0].Body))
}

func TestResourceSyncJobDeleteEndedJob(t *testing.T) {
	srv := fakeonefs.New(t)

	d := schema.TestResourceDataRaw(t, ResourceSyncJob().Schema, map[string]interface{}{
		"policy_name": "nightly",
	})
	d.SetId("nightly")

	diags := resourceSyncJobDelete(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, srv.Writes())
}
