package alertchannel

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

func ResourceAlertChannel() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an event notification channel.",
		CreateContext: resourceAlertChannelCreate,
		ReadContext:   resourceAlertChannelRead,
		UpdateContext: resourceAlertChannelUpdate,
		DeleteContext: resourceAlertChannelDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"type": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: validation.StringInSlice(channelTypes, false),
			},
			"enabled": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"allowed_nodes": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeInt},
			},
			"excluded_nodes": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeInt},
			},
			"smtp_parameters": {
				Type:     schema.TypeList,
				Optional: true,
				MaxItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"address": {
							Type:     schema.TypeSet,
							Required: true,
							Elem:     &schema.Schema{Type: schema.TypeString},
						},
						"smtp_host": {
							Type:     schema.TypeString,
							Required: true,
						},
						"smtp_port": {
							Type:         schema.TypeInt,
							Optional:     true,
							Default:      25,
							ValidateFunc: validation.IsPortNumber,
						},
						"send_as": {
							Type:     schema.TypeString,
							Optional: true,
						},
						"subject": {
							Type:     schema.TypeString,
							Optional: true,
						},
						"batch": {
							Type:         schema.TypeString,
							Optional:     true,
							Default:      "none",
							ValidateFunc: validation.StringInSlice(batchModes, false),
						},
					},
				},
			},
			"snmp_parameters": {
				Type:     schema.TypeList,
				Optional: true,
				MaxItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"host": {
							Type:     schema.TypeString,
							Required: true,
						},
						"community": {
							Type:      schema.TypeString,
							Required:  true,
							Sensitive: true,
						},
					},
				},
			},
			"channel_id": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceAlertChannelCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	name := d.Get("name").(string)
	spec, err := expandAlertChannelSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	createOpts := CreateAlertChannelRequest{
		Name:          name,
		Type:          d.Get("type").(string),
		Enabled:       spec.Enabled,
		AllowedNodes:  spec.AllowedNodes,
		ExcludedNodes: spec.ExcludedNodes,
		Parameters:    spec.Parameters,
	}

	tflog.Debug(ctx, "powerscale_alert_channel create options", map[string]interface{}{"name": name, "type": createOpts.Type})

	if _, err := c.Post(ctx, client.ApiPath.EventChannels, createOpts, nil, nil); err != nil {
		return diag.Errorf("Error creating powerscale_alert_channel %s: %s", name, client.DetermineError(err))
	}

	d.SetId(name)

	return resourceAlertChannelRead(ctx, d, meta)
}

func resourceAlertChannelRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	channel, err := getAlertChannel(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_alert_channel"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_alert_channel "+d.Id(), map[string]interface{}{
		"id":      channel.ID,
		"type":    channel.Type,
		"enabled": channel.Enabled,
	})

	d.Set("name", channel.Name)
	d.Set("type", channel.Type)
	d.Set("enabled", channel.Enabled)
	d.Set("allowed_nodes", channel.AllowedNodes)
	d.Set("excluded_nodes", channel.ExcludedNodes)
	d.Set("channel_id", channel.ID)

	switch channel.Type {
	case ChannelTypeSmtp:
		d.Set("smtp_parameters", flattenSmtpParameters(channel.Parameters))
	case ChannelTypeSnmp:
		d.Set("snmp_parameters", flattenSnmpParameters(channel.Parameters))
	}

	return nil
}

func resourceAlertChannelUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec, err := expandAlertChannelSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	current, err := getAlertChannel(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_alert_channel %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildAlertChannelUpdate(*current, spec)
	if changed {
		tflog.Debug(ctx, "powerscale_alert_channel update", map[string]interface{}{
			"id":                 d.Id(),
			"parameters_changed": updateOpts.Parameters != nil,
		})

		if _, err := c.Put(ctx, client.ApiPath.EventChannelWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_alert_channel %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceAlertChannelRead(ctx, d, meta)
}

func resourceAlertChannelDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.EventChannelWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_alert_channel %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
