package synciqpolicy

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceSyncPolicy() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a SyncIQ replication policy.",
		CreateContext: resourceSyncPolicyCreate,
		ReadContext:   resourceSyncPolicyRead,
		UpdateContext: resourceSyncPolicyUpdate,
		DeleteContext: resourceSyncPolicyDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
			},
			"action": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: validation.StringInSlice([]string{"copy", "sync"}, false),
			},
			"source_root_path": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"target_host": {
				Type:     schema.TypeString,
				Required: true,
			},
			"target_path": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"enabled": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"schedule": {
				Type:        schema.TypeString,
				Optional:    true,
				Computed:    true,
				Description: "OneFS schedule string, 'when-source-modified', or empty for manual runs.",
			},
			"job_delay": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
			},
			"source_include_directories": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: util.ValidateIfsPath,
				},
			},
			"source_exclude_directories": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: util.ValidateIfsPath,
				},
			},
			"target_snapshot_archive": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"target_certificate_id": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"last_job_state": {
				Type:     schema.TypeString,
				Computed: true,
			},
		},
	}
}

func resourceSyncPolicyCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec := expandSyncPolicySpec(d)
	createOpts := CreateSyncPolicyRequest{
		Name:                     spec.Name,
		Action:                   spec.Action,
		SourceRootPath:           spec.SourceRootPath,
		TargetHost:               spec.TargetHost,
		TargetPath:               spec.TargetPath,
		Enabled:                  spec.Enabled,
		JobDelay:                 spec.JobDelay,
		SourceIncludeDirectories: spec.SourceIncludeDirectories,
		SourceExcludeDirectories: spec.SourceExcludeDirectories,
		TargetSnapshotArchive:    spec.TargetSnapshotArchive,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}
	if spec.Schedule != nil {
		createOpts.Schedule = *spec.Schedule
	}
	if spec.TargetCertificateID != nil {
		createOpts.TargetCertificateID = *spec.TargetCertificateID
	}

	tflog.Debug(ctx, "powerscale_synciq_policy create options", map[string]interface{}{"create_opts": createOpts})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, client.ApiPath.SyncPolicies, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_synciq_policy %s: %s", spec.Name, client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	return resourceSyncPolicyRead(ctx, d, meta)
}

func resourceSyncPolicyRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	policy, err := getSyncPolicy(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_synciq_policy"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_synciq_policy "+d.Id(), map[string]interface{}{"policy": policy})

	d.Set("name", policy.Name)
	d.Set("action", policy.Action)
	d.Set("source_root_path", policy.SourceRootPath)
	d.Set("target_host", policy.TargetHost)
	d.Set("target_path", policy.TargetPath)
	d.Set("description", policy.Description)
	d.Set("enabled", policy.Enabled)
	d.Set("schedule", policy.Schedule)
	d.Set("job_delay", policy.JobDelay)
	d.Set("source_include_directories", policy.SourceIncludeDirectories)
	d.Set("source_exclude_directories", policy.SourceExcludeDirectories)
	d.Set("target_snapshot_archive", policy.TargetSnapshotArchive)
	d.Set("target_certificate_id", policy.TargetCertificateID)
	d.Set("last_job_state", policy.LastJobState)

	return nil
}

func resourceSyncPolicyUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getSyncPolicy(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_synciq_policy %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildSyncPolicyUpdate(*current, expandSyncPolicySpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_synciq_policy update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.SyncPolicyWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_synciq_policy %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceSyncPolicyRead(ctx, d, meta)
}

func resourceSyncPolicyDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.SyncPolicyWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_synciq_policy %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
