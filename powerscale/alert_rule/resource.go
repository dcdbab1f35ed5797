package alertrule

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

func ResourceAlertRule() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an alert condition routing event groups to channels.",
		CreateContext: resourceAlertRuleCreate,
		ReadContext:   resourceAlertRuleRead,
		UpdateContext: resourceAlertRuleUpdate,
		DeleteContext: resourceAlertRuleDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"condition": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: validation.StringInSlice(conditions, false),
			},
			"channels": {
				Type:     schema.TypeSet,
				Required: true,
				MinItems: 1,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"eventgroup_ids": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"categories": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"interval": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
			},
			"limit": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
			},
			"transient": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
			},
		},
	}
}

func resourceAlertRuleCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	name := d.Get("name").(string)
	spec := expandAlertConditionSpec(d)

	createOpts := CreateAlertConditionRequest{
		Name:          name,
		Condition:     spec.Condition,
		Channels:      spec.Channels,
		EventgroupIds: spec.EventgroupIds,
		Categories:    spec.Categories,
		Interval:      spec.Interval,
		Limit:         spec.Limit,
		Transient:     spec.Transient,
	}

	tflog.Debug(ctx, "powerscale_alert_rule create options", map[string]interface{}{"create_opts": createOpts})

	if _, err := c.Post(ctx, client.ApiPath.EventAlertConditions, createOpts, nil, nil); err != nil {
		return diag.Errorf("Error creating powerscale_alert_rule %s: %s", name, client.DetermineError(err))
	}

	d.SetId(name)

	return resourceAlertRuleRead(ctx, d, meta)
}

func resourceAlertRuleRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	rule, err := getAlertCondition(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_alert_rule"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_alert_rule "+d.Id(), map[string]interface{}{"rule": rule})

	d.Set("name", rule.Name)
	d.Set("condition", rule.Condition)
	d.Set("channels", rule.Channels)
	d.Set("eventgroup_ids", rule.EventgroupIds)
	d.Set("categories", rule.Categories)
	d.Set("interval", rule.Interval)
	d.Set("limit", rule.Limit)
	d.Set("transient", rule.Transient)

	return nil
}

func resourceAlertRuleUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getAlertCondition(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_alert_rule %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildAlertConditionUpdate(*current, expandAlertConditionSpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_alert_rule update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.EventAlertConditionWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_alert_rule %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceAlertRuleRead(ctx, d, meta)
}

func resourceAlertRuleDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.EventAlertConditionWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_alert_rule %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
