package synciqjob

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/retry"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const (
	JobStateScheduled      = "scheduled"
	JobStatePending        = "pending"
	JobStateRunning        = "running"
	JobStatePaused         = "paused"
	JobStateFinished       = "finished"
	JobStateFailed         = "failed"
	JobStateCanceled       = "canceled"
	JobStateNeedsAttention = "needs_attention"
	JobStateSkipped        = "skipped"
	JobStateUnknown        = "unknown"
)

var (
	jobActions = []string{"run", "test", "resync_prep", "allow_write", "allow_write_revert"}

	// desiredStates are the states a job can be moved to through PUT.
	desiredStates = []string{JobStateRunning, JobStatePaused, JobStateCanceled}

	pollInterval = 5 * time.Second
)

func getSyncJob(ctx context.Context, c *client.Client, id string) (*SyncJobDto, error) {
	resp := &GetSyncJobResponse{}
	if _, err := c.Get(ctx, client.ApiPath.SyncJobWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Jobs) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.SyncJobWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("SyncIQ job %s not found", id)),
		}
	}

	return &resp.Jobs[0], nil
}

// syncJobStateRefreshFunc reports a job the cluster no longer lists as
// finished. OneFS only lists jobs that are still active.
func syncJobStateRefreshFunc(ctx context.Context, c *client.Client, id string) retry.StateRefreshFunc {
	return func() (interface{}, string, error) {
		job, err := getSyncJob(ctx, c, id)
		if err != nil {
			if util.IgnoreNotFound(err) == nil {
				return &SyncJobDto{ID: id, State: JobStateFinished}, JobStateFinished, nil
			}
			return nil, "", err
		}

		tflog.Trace(ctx, "powerscale_synciq_job state", map[string]interface{}{"id": id, "state": job.State})

		if job.State == JobStateFailed || job.State == JobStateNeedsAttention {
			return job, job.State, fmt.Errorf("SyncIQ job %s entered state %s", id, job.State)
		}

		return job, job.State, nil
	}
}

// transitionStates returns the states a wait polls through and the states
// that end it when moving a job to target.
func transitionStates(target string) ([]string, []string) {
	switch target {
	case JobStatePaused:
		return []string{JobStateScheduled, JobStatePending, JobStateRunning},
			[]string{JobStatePaused, JobStateFinished}
	case JobStateCanceled:
		return []string{JobStateScheduled, JobStatePending, JobStateRunning, JobStatePaused},
			[]string{JobStateCanceled, JobStateFinished}
	case JobStateFinished:
		return []string{JobStateScheduled, JobStatePending, JobStateRunning, JobStatePaused},
			[]string{JobStateFinished, JobStateSkipped}
	default:
		return []string{JobStateScheduled, JobStatePending, JobStatePaused},
			[]string{JobStateRunning, JobStateFinished, JobStateSkipped}
	}
}

func waitForSyncJobState(ctx context.Context, c *client.Client, id string, target string, timeout time.Duration) (*SyncJobDto, error) {
	pending, targets := transitionStates(target)

	stateConf := &retry.StateChangeConf{
		Pending:      pending,
		Target:       targets,
		Refresh:      syncJobStateRefreshFunc(ctx, c, id),
		Timeout:      timeout,
		PollInterval: pollInterval,
	}

	res, err := stateConf.WaitForStateContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error waiting for SyncIQ job %s to become %s: %s", id, target, client.DetermineError(err))
	}

	return res.(*SyncJobDto), nil
}

// isActive reports whether a job still holds its policy and can be moved
// between states.
func isActive(state string) bool {
	switch state {
	case JobStateScheduled, JobStatePending, JobStateRunning, JobStatePaused:
		return true
	}
	return false
}
