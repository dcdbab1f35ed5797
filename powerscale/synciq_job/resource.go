package synciqjob

import (
	"context"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceSyncJob() *schema.Resource {
	return &schema.Resource{
		Description:   "Starts a SyncIQ job for a policy and controls its state.",
		CreateContext: resourceSyncJobCreate,
		ReadContext:   resourceSyncJobRead,
		UpdateContext: resourceSyncJobUpdate,
		DeleteContext: resourceSyncJobDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Timeouts: &schema.ResourceTimeout{
			Create: schema.DefaultTimeout(60 * time.Minute),
			Update: schema.DefaultTimeout(10 * time.Minute),
			Delete: schema.DefaultTimeout(10 * time.Minute),
		},
		Schema: map[string]*schema.Schema{
			"policy_name": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"action": {
				Type:         schema.TypeString,
				Optional:     true,
				ForceNew:     true,
				Default:      "run",
				ValidateFunc: validation.StringInSlice(jobActions, false),
			},
			"state": {
				Type:         schema.TypeString,
				Optional:     true,
				Default:      JobStateRunning,
				ValidateFunc: validation.StringInSlice(desiredStates, false),
			},
			"wait_for_completion": {
				Type:     schema.TypeBool,
				Optional: true,
				Default:  false,
			},
			"job_state": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"files_transferred": {
				Type:     schema.TypeInt,
				Computed: true,
			},
			"bytes_transferred": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceSyncJobCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	policyName := d.Get("policy_name").(string)
	createOpts := CreateSyncJobRequest{
		ID:     policyName,
		Action: d.Get("action").(string),
	}

	tflog.Debug(ctx, "powerscale_synciq_job create options", map[string]interface{}{"create_opts": createOpts})

	if _, err := c.Post(ctx, client.ApiPath.SyncJobs, createOpts, nil, nil); err != nil {
		return diag.Errorf("Error starting powerscale_synciq_job for policy %s: %s", policyName, client.DetermineError(err))
	}

	d.SetId(policyName)

	desired := d.Get("state").(string)
	if desired != JobStateRunning {
		if _, err := c.Put(ctx, client.ApiPath.SyncJobWithId(d.Id()), UpdateSyncJobRequest{State: desired}, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	target := desired
	if desired == JobStateRunning && d.Get("wait_for_completion").(bool) {
		target = JobStateFinished
	}

	if _, err := waitForSyncJobState(ctx, c, d.Id(), target, d.Timeout(schema.TimeoutCreate)); err != nil {
		return diag.FromErr(err)
	}

	return resourceSyncJobRead(ctx, d, meta)
}

func resourceSyncJobRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	job, err := getSyncJob(ctx, c, d.Id())
	if err != nil {
		if util.IgnoreNotFound(err) != nil {
			return diag.Errorf("Error retrieving powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
		}

		// The cluster drops jobs once they end; keep the resource so the
		// run is not started again.
		d.Set("policy_name", d.Id())
		d.Set("job_state", JobStateFinished)
		return nil
	}

	tflog.Debug(ctx, "Retrieved powerscale_synciq_job "+d.Id(), map[string]interface{}{"job": job})

	d.Set("policy_name", job.PolicyName)
	if job.Action != "" {
		d.Set("action", job.Action)
	}
	if job.State == JobStateRunning || job.State == JobStatePaused {
		d.Set("state", job.State)
	}
	d.Set("job_state", job.State)
	d.Set("files_transferred", job.FilesTransferred)
	d.Set("bytes_transferred", job.BytesTransferred)

	return nil
}

func resourceSyncJobUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if !d.HasChange("state") {
		return resourceSyncJobRead(ctx, d, meta)
	}

	current, err := getSyncJob(ctx, c, d.Id())
	if err != nil {
		if util.IgnoreNotFound(err) != nil {
			return diag.Errorf("Error retrieving powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
		}
		tflog.Info(ctx, "powerscale_synciq_job has already ended, state change skipped", map[string]interface{}{"id": d.Id()})
		return resourceSyncJobRead(ctx, d, meta)
	}

	target := d.Get("state").(string)
	if current.State == target || !isActive(current.State) {
		return resourceSyncJobRead(ctx, d, meta)
	}

	updateOpts := UpdateSyncJobRequest{State: target}
	tflog.Debug(ctx, "powerscale_synciq_job update options", map[string]interface{}{"update_opts": updateOpts})

	if _, err := c.Put(ctx, client.ApiPath.SyncJobWithId(d.Id()), updateOpts, nil, nil); err != nil {
		return diag.Errorf("Error updating powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
	}

	if _, err := waitForSyncJobState(ctx, c, d.Id(), target, d.Timeout(schema.TimeoutUpdate)); err != nil {
		return diag.FromErr(err)
	}

	return resourceSyncJobRead(ctx, d, meta)
}

func resourceSyncJobDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getSyncJob(ctx, c, d.Id())
	if err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error retrieving powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
		}
		return nil
	}

	if !isActive(current.State) {
		return nil
	}

	if _, err := c.Put(ctx, client.ApiPath.SyncJobWithId(d.Id()), UpdateSyncJobRequest{State: JobStateCanceled}, nil, nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error canceling powerscale_synciq_job %s: %s", d.Id(), client.DetermineError(err))
		}
		return nil
	}

	if _, err := waitForSyncJobState(ctx, c, d.Id(), JobStateCanceled, d.Timeout(schema.TimeoutDelete)); err != nil {
		return diag.FromErr(err)
	}

	return nil
}
