package accesszone

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceAccessZone() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an access zone on a PowerScale cluster.",
		CreateContext: resourceAccessZoneCreate,
		ReadContext:   resourceAccessZoneRead,
		UpdateContext: resourceAccessZoneUpdate,
		DeleteContext: resourceAccessZoneDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:        schema.TypeString,
				Required:    true,
				ForceNew:    true,
				Description: "Name of the access zone.",
			},
			"path": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: util.ValidateIfsPath,
				Description:  "Base directory of the access zone.",
			},
			"groupnet": {
				Type:        schema.TypeString,
				Optional:    true,
				ForceNew:    true,
				Default:     "groupnet0",
				Description: "Groupnet the access zone is bound to.",
			},
			"auth_providers": {
				Type:        schema.TypeList,
				Optional:    true,
				Computed:    true,
				Elem:        &schema.Schema{Type: schema.TypeString},
				Description: "Ordered list of authentication providers, e.g. lsa-local-provider:zone1.",
			},
			"user_mapping_rules": {
				Type:     schema.TypeList,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"create_path": {
				Type:        schema.TypeBool,
				Optional:    true,
				Default:     false,
				Description: "Create the base directory when it does not exist. Only used on create.",
			},
			"zone_id": {
				Type:     schema.TypeInt,
				Computed: true,
			},
			"system": {
				Type:     schema.TypeBool,
				Computed: true,
			},
		},
	}
}

func resourceAccessZoneCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec := expandAccessZoneSpec(d)
	createOpts := CreateAccessZoneRequest{
		Name:             d.Get("name").(string),
		Path:             spec.Path,
		Groupnet:         d.Get("groupnet").(string),
		AuthProviders:    spec.AuthProviders,
		UserMappingRules: spec.UserMappingRules,
	}

	if d.Get("create_path").(bool) {
		createOpts.CreatePath = ptr.To(true)
	}

	tflog.Debug(ctx, "powerscale_access_zone create options", map[string]interface{}{"create_opts": createOpts})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, client.ApiPath.Zones, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_access_zone %s: %s", createOpts.Name, client.DetermineError(err))
	}

	d.SetId(createOpts.Name)

	return resourceAccessZoneRead(ctx, d, meta)
}

func resourceAccessZoneRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	zone, err := getAccessZone(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_access_zone"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_access_zone "+d.Id(), map[string]interface{}{"zone": zone})

	setAccessZoneState(d, zone)

	return nil
}

func resourceAccessZoneUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getAccessZone(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_access_zone %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildAccessZoneUpdate(*current, expandAccessZoneSpec(d))
	if !changed {
		tflog.Debug(ctx, "powerscale_access_zone "+d.Id()+" is already up to date")
		return resourceAccessZoneRead(ctx, d, meta)
	}

	tflog.Debug(ctx, "powerscale_access_zone update options", map[string]interface{}{"update_opts": updateOpts})

	if _, err := c.Put(ctx, client.ApiPath.ZoneWithId(d.Id()), updateOpts, nil, nil); err != nil {
		return diag.Errorf("Error updating powerscale_access_zone %s: %s", d.Id(), client.DetermineError(err))
	}

	return resourceAccessZoneRead(ctx, d, meta)
}

func resourceAccessZoneDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.ZoneWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_access_zone %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
