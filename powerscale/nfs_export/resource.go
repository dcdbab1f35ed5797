package nfsexport

import (
	"context"
	"strconv"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

var securityFlavors = []string{"unix", "krb5", "krb5i", "krb5p"}

func clientSetSchema(description string) *schema.Schema {
	return &schema.Schema{
		Type:        schema.TypeSet,
		Optional:    true,
		Computed:    true,
		Elem:        &schema.Schema{Type: schema.TypeString},
		Description: description,
	}
}

func ResourceNfsExport() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an NFS export.",
		CreateContext: resourceNfsExportCreate,
		ReadContext:   resourceNfsExportRead,
		UpdateContext: resourceNfsExportUpdate,
		DeleteContext: resourceNfsExportDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceNfsExportImport,
		},
		Schema: map[string]*schema.Schema{
			"paths": {
				Type:     schema.TypeList,
				Required: true,
				MinItems: 1,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: util.ValidateIfsPath,
				},
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
			"clients":            clientSetSchema("Clients with the export's default access."),
			"read_only_clients":  clientSetSchema("Clients with read-only access."),
			"read_write_clients": clientSetSchema("Clients with read-write access."),
			"root_clients":       clientSetSchema("Clients with root access."),
			"read_only": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"all_dirs": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"security_flavors": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: validation.StringInSlice(securityFlavors, false),
				},
			},
			"map_root_enabled": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"map_root_user": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"ignore_unresolvable_hosts": {
				Type:        schema.TypeBool,
				Optional:    true,
				Default:     false,
				Description: "Accept client host names that do not resolve.",
			},
			"export_id": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceNfsExportCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	zone := d.Get("zone").(string)
	spec := expandNfsExportSpec(d)

	createOpts := CreateNfsExportRequest{
		Paths:            spec.Paths,
		Clients:          spec.Clients,
		ReadOnlyClients:  spec.ReadOnlyClients,
		ReadWriteClients: spec.ReadWriteClients,
		RootClients:      spec.RootClients,
		ReadOnly:         spec.ReadOnly,
		AllDirs:          spec.AllDirs,
		SecurityFlavors:  spec.SecurityFlavors,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}
	if spec.MapRootEnabled != nil || spec.MapRootUser != nil {
		createOpts.MapRoot = &MapRoot{Enabled: spec.MapRootEnabled}
		if spec.MapRootUser != nil {
			createOpts.MapRoot.User = &client.Persona{ID: userPersonaPrefix + *spec.MapRootUser}
		}
	}

	tflog.Debug(ctx, "powerscale_nfs_export create options", map[string]interface{}{"create_opts": createOpts})

	path := client.ApiPath.ListWithQuery(client.ApiPath.NfsExports, NfsExportQuery{
		Zone:                    zone,
		IgnoreUnresolvableHosts: d.Get("ignore_unresolvable_hosts").(bool),
	})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, path, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_nfs_export %v: %s", spec.Paths, client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	return resourceNfsExportRead(ctx, d, meta)
}

func resourceNfsExportRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	id, err := exportID(d)
	if err != nil {
		return diag.FromErr(err)
	}

	export, err := getNfsExport(ctx, c, id, d.Get("zone").(string))
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_nfs_export"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_nfs_export "+d.Id(), map[string]interface{}{"export": export})

	setNfsExportState(d, export)

	return nil
}

func resourceNfsExportUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	id, err := exportID(d)
	if err != nil {
		return diag.FromErr(err)
	}

	zone := d.Get("zone").(string)
	current, err := getNfsExport(ctx, c, id, zone)
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_nfs_export %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildNfsExportUpdate(*current, expandNfsExportSpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_nfs_export update options", map[string]interface{}{"update_opts": updateOpts})

		path := client.ApiPath.ListWithQuery(client.ApiPath.NfsExportWithId(id), NfsExportQuery{
			Zone:                    zone,
			IgnoreUnresolvableHosts: d.Get("ignore_unresolvable_hosts").(bool),
		})

		if _, err := c.Put(ctx, path, updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_nfs_export %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceNfsExportRead(ctx, d, meta)
}

func resourceNfsExportDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	id, err := exportID(d)
	if err != nil {
		return diag.FromErr(err)
	}

	path := client.ApiPath.ListWithQuery(client.ApiPath.NfsExportWithId(id), NfsExportQuery{Zone: d.Get("zone").(string)})
	if _, err := c.Delete(ctx, path, nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_nfs_export %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}

// resourceNfsExportImport accepts <zone>:<export id>.
func resourceNfsExportImport(ctx context.Context, d *schema.ResourceData, meta interface{}) ([]*schema.ResourceData, error) {
	zone, id, err := util.ParseZonedID(d.Id())
	if err != nil {
		return nil, err
	}

	if _, err := strconv.Atoi(id); err != nil {
		return nil, err
	}

	d.SetId(id)
	d.Set("zone", zone)

	return []*schema.ResourceData{d}, nil
}
