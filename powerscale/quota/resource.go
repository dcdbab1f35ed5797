package quota

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

func ResourceQuota() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a SmartQuotas quota. Limits are expressed in cap_unit and stored on the cluster in bytes.",
		CreateContext: resourceQuotaCreate,
		ReadContext:   resourceQuotaRead,
		UpdateContext: resourceQuotaUpdate,
		DeleteContext: resourceQuotaDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceQuotaImport,
		},
		Schema: map[string]*schema.Schema{
			"path": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"type": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: validation.StringInSlice(quotaTypes, false),
			},
			"persona": {
				Type:        schema.TypeString,
				Optional:    true,
				ForceNew:    true,
				Description: "User or group name for user and group quotas.",
			},
			"zone": {
				Type:        schema.TypeString,
				Optional:    true,
				ForceNew:    true,
				Default:     util.DefaultZone,
				Description: "Access zone used to resolve the persona.",
			},
			"include_snapshots": {
				Type:     schema.TypeBool,
				Optional: true,
				ForceNew: true,
				Default:  false,
			},
			"thresholds_include_overhead": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"enforced": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"container": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"cap_unit": {
				Type:         schema.TypeString,
				Optional:     true,
				Default:      "GB",
				ValidateFunc: validation.StringInSlice(util.CapUnits(), false),
			},
			"hard_limit": {
				Type:         schema.TypeFloat,
				Optional:     true,
				Computed:     true,
				ValidateFunc: util.ValidateCapSize,
			},
			"soft_limit": {
				Type:         schema.TypeFloat,
				Optional:     true,
				Computed:     true,
				ValidateFunc: util.ValidateCapSize,
			},
			"advisory_limit": {
				Type:         schema.TypeFloat,
				Optional:     true,
				Computed:     true,
				ValidateFunc: util.ValidateCapSize,
			},
			"soft_grace": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
				Description:  "Soft limit grace period in seconds.",
			},
			"usage_logical": {
				Type:     schema.TypeInt,
				Computed: true,
			},
			"usage_physical": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceQuotaCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec, err := expandQuotaSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	if spec.Thresholds.Soft != nil && spec.Thresholds.SoftGrace == nil {
		return diag.Errorf("soft_grace is required when soft_limit is set")
	}

	quotaType := d.Get("type").(string)
	createOpts := CreateQuotaRequest{
		Path:                      d.Get("path").(string),
		Type:                      quotaType,
		Persona:                   personaFor(quotaType, d.Get("persona").(string)),
		IncludeSnapshots:          d.Get("include_snapshots").(bool),
		ThresholdsIncludeOverhead: spec.ThresholdsIncludeOverhead,
		Enforced:                  spec.Enforced,
		Container:                 spec.Container,
	}
	if spec.Thresholds != (Thresholds{}) {
		createOpts.Thresholds = &spec.Thresholds
	}

	tflog.Debug(ctx, "powerscale_quota create options", map[string]interface{}{"create_opts": createOpts})

	path := client.ApiPath.ListWithQuery(client.ApiPath.Quotas, QuotaQuery{Zone: d.Get("zone").(string)})
	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, path, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_quota on %s: %s", createOpts.Path, client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	return resourceQuotaRead(ctx, d, meta)
}

func resourceQuotaRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	quota, err := getQuota(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_quota"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_quota "+d.Id(), map[string]interface{}{"quota": quota})

	unit := d.Get("cap_unit").(string)
	if unit == "" {
		unit = "GB"
		d.Set("cap_unit", unit)
	}

	d.Set("path", quota.Path)
	d.Set("type", quota.Type)
	if quota.Persona != nil {
		d.Set("persona", quota.Persona.Name)
	}
	d.Set("include_snapshots", quota.IncludeSnapshots)
	d.Set("thresholds_include_overhead", quota.ThresholdsIncludeOverhead)
	d.Set("enforced", quota.Enforced)
	d.Set("container", quota.Container)
	setLimit(d, "hard_limit", quota.Thresholds.Hard, unit)
	setLimit(d, "soft_limit", quota.Thresholds.Soft, unit)
	setLimit(d, "advisory_limit", quota.Thresholds.Advisory, unit)
	if quota.Thresholds.SoftGrace != nil {
		d.Set("soft_grace", *quota.Thresholds.SoftGrace)
	}
	d.Set("usage_logical", quota.Usage.Logical)
	d.Set("usage_physical", quota.Usage.Physical)

	return nil
}

func resourceQuotaUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec, err := expandQuotaSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	current, err := getQuota(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_quota %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildQuotaUpdate(*current, spec)
	if changed {
		tflog.Debug(ctx, "powerscale_quota update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.QuotaWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_quota %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceQuotaRead(ctx, d, meta)
}

func resourceQuotaDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.QuotaWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_quota %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}

// resourceQuotaImport accepts <zone>:<quota id>.
func resourceQuotaImport(ctx context.Context, d *schema.ResourceData, meta interface{}) ([]*schema.ResourceData, error) {
	zone, id, err := util.ParseZonedID(d.Id())
	if err != nil {
		return nil, err
	}

	d.SetId(id)
	d.Set("zone", zone)

	return []*schema.ResourceData{d}, nil
}
