package smbshare

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceSmbShare() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an SMB share.",
		CreateContext: resourceSmbShareCreate,
		ReadContext:   resourceSmbShareRead,
		UpdateContext: resourceSmbShareUpdate,
		DeleteContext: resourceSmbShareDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceSmbShareImport,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
			},
			"path": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"zone": {
				Type:     schema.TypeString,
				Optional: true,
				ForceNew: true,
				Default:  util.DefaultZone,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"create_path": {
				Type:        schema.TypeBool,
				Optional:    true,
				Default:     false,
				Description: "Create the share directory when it does not exist. Only used on create.",
			},
			"browsable": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"access_based_enumeration": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"ca_timeout": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntAtLeast(0),
				Description:  "Continuous availability timeout in seconds.",
			},
			"directory_create_mask": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntBetween(0, 0777),
			},
			"file_create_mask": {
				Type:         schema.TypeInt,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.IntBetween(0, 0777),
			},
			"permissions": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"trustee_name": {
							Type:     schema.TypeString,
							Required: true,
						},
						"trustee_type": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice([]string{"user", "group", "wellknown"}, false),
						},
						"permission": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice([]string{"full", "change", "read"}, false),
						},
						"permission_type": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice([]string{"allow", "deny"}, false),
						},
					},
				},
			},
		},
	}
}

func resourceSmbShareCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	zone := d.Get("zone").(string)
	spec := expandSmbShareSpec(d)

	createOpts := CreateSmbShareRequest{
		Name:                   spec.Name,
		Path:                   spec.Path,
		Browsable:              spec.Browsable,
		AccessBasedEnumeration: spec.AccessBasedEnumeration,
		CaTimeout:              spec.CaTimeout,
		DirectoryCreateMask:    spec.DirectoryCreateMask,
		FileCreateMask:         spec.FileCreateMask,
		Permissions:            spec.Permissions,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}
	if d.Get("create_path").(bool) {
		createOpts.CreatePath = ptr.To(true)
	}

	tflog.Debug(ctx, "powerscale_smb_share create options", map[string]interface{}{"create_opts": createOpts})

	path := client.ApiPath.ListWithQuery(client.ApiPath.SmbShares, SmbShareQuery{Zone: zone})
	if _, err := c.Post(ctx, path, createOpts, &client.CreateResponse{}, nil); err != nil {
		return diag.Errorf("Error creating powerscale_smb_share %s: %s", spec.Name, client.DetermineError(err))
	}

	d.SetId(spec.Name)

	return resourceSmbShareRead(ctx, d, meta)
}

func resourceSmbShareRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	share, err := getSmbShare(ctx, c, d.Id(), d.Get("zone").(string))
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_smb_share"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_smb_share "+d.Id(), map[string]interface{}{"share": share})

	d.Set("name", share.Name)
	d.Set("path", share.Path)
	if share.Zone != "" {
		d.Set("zone", share.Zone)
	}
	d.Set("description", share.Description)
	d.Set("browsable", share.Browsable)
	d.Set("access_based_enumeration", share.AccessBasedEnumeration)
	d.Set("ca_timeout", share.CaTimeout)
	d.Set("directory_create_mask", share.DirectoryCreateMask)
	d.Set("file_create_mask", share.FileCreateMask)
	d.Set("permissions", flattenPermissions(share.Permissions))

	return nil
}

func resourceSmbShareUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	zone := d.Get("zone").(string)
	current, err := getSmbShare(ctx, c, d.Id(), zone)
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_smb_share %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildSmbShareUpdate(*current, expandSmbShareSpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_smb_share update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, sharePath(d.Id(), zone), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_smb_share %s: %s", d.Id(), client.DetermineError(err))
		}

		if updateOpts.Name != nil {
			d.SetId(*updateOpts.Name)
		}
	}

	return resourceSmbShareRead(ctx, d, meta)
}

func resourceSmbShareDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, sharePath(d.Id(), d.Get("zone").(string)), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_smb_share %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}

// resourceSmbShareImport accepts <zone>:<share name>.
func resourceSmbShareImport(ctx context.Context, d *schema.ResourceData, meta interface{}) ([]*schema.ResourceData, error) {
	zone, name, err := util.ParseZonedID(d.Id())
	if err != nil {
		return nil, err
	}

	d.SetId(name)
	d.Set("zone", zone)

	return []*schema.ResourceData{d}, nil
}
