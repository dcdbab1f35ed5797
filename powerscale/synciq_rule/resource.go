package synciqrule

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

func ResourceSyncRule() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a SyncIQ performance rule.",
		CreateContext: resourceSyncRuleCreate,
		ReadContext:   resourceSyncRuleRead,
		UpdateContext: resourceSyncRuleUpdate,
		DeleteContext: resourceSyncRuleDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		CustomizeDiff: func(ctx context.Context, diff *schema.ResourceDiff, meta interface{}) error {
			return validateRuleLimit(diff.Get("type").(string), diff.Get("limit").(int))
		},
		Schema: map[string]*schema.Schema{
			"type": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: validation.StringInSlice(ruleTypes, false),
			},
			"limit": {
				Type:        schema.TypeInt,
				Required:    true,
				Description: "kb/s for bandwidth, files/s for file_count, percent for cpu and worker.",
			},
			"enabled": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"schedule": {
				Type:     schema.TypeList,
				Optional: true,
				Computed: true,
				MaxItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"begin": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringMatch(clockRegexp, "must be HH:MM"),
						},
						"end": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringMatch(clockRegexp, "must be HH:MM"),
						},
						"days_of_week": {
							Type:     schema.TypeSet,
							Required: true,
							Elem: &schema.Schema{
								Type:         schema.TypeString,
								ValidateFunc: validation.StringInSlice(daysOfWeek, false),
							},
						},
					},
				},
			},
		},
	}
}

func resourceSyncRuleCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	ruleType := d.Get("type").(string)
	spec := expandSyncRuleSpec(d)

	if err := validateRuleLimit(ruleType, spec.Limit); err != nil {
		return diag.FromErr(err)
	}

	createOpts := CreateSyncRuleRequest{
		Type:     ruleType,
		Limit:    spec.Limit,
		Enabled:  spec.Enabled,
		Schedule: spec.Schedule,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}

	tflog.Debug(ctx, "powerscale_synciq_rule create options", map[string]interface{}{"create_opts": createOpts})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, client.ApiPath.SyncRules, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_synciq_rule: %s", client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	return resourceSyncRuleRead(ctx, d, meta)
}

func resourceSyncRuleRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	rule, err := getSyncRule(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_synciq_rule"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_synciq_rule "+d.Id(), map[string]interface{}{"rule": rule})

	d.Set("type", rule.Type)
	d.Set("limit", rule.Limit)
	d.Set("enabled", rule.Enabled)
	d.Set("description", rule.Description)
	d.Set("schedule", flattenSchedule(rule.Schedule))

	return nil
}

func resourceSyncRuleUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec := expandSyncRuleSpec(d)
	if err := validateRuleLimit(d.Get("type").(string), spec.Limit); err != nil {
		return diag.FromErr(err)
	}

	current, err := getSyncRule(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_synciq_rule %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildSyncRuleUpdate(*current, spec)
	if changed {
		tflog.Debug(ctx, "powerscale_synciq_rule update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.SyncRuleWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_synciq_rule %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceSyncRuleRead(ctx, d, meta)
}

func resourceSyncRuleDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.SyncRuleWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_synciq_rule %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
