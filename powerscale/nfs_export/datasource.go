package nfsexport

import (
	"context"
	"strconv"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func computedStringSet() *schema.Schema {
	return &schema.Schema{
		Type:     schema.TypeSet,
		Computed: true,
		Elem:     &schema.Schema{Type: schema.TypeString},
	}
}

func DataSourceNfsExport() *schema.Resource {
	return &schema.Resource{
		Description: "Looks up an NFS export by path within an access zone.",
		ReadContext: dataSourceNfsExportRead,
		Schema: map[string]*schema.Schema{
			"path": {
				Type:         schema.TypeString,
				Required:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"zone": {
				Type:     schema.TypeString,
				Optional: true,
				Default:  util.DefaultZone,
			},
			"paths": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"description": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"clients":            computedStringSet(),
			"read_only_clients":  computedStringSet(),
			"read_write_clients": computedStringSet(),
			"root_clients":       computedStringSet(),
			"security_flavors":   computedStringSet(),
			"read_only": {
				Type:     schema.TypeBool,
				Computed: true,
			},
			"all_dirs": {
				Type:     schema.TypeBool,
				Computed: true,
			},
			"map_root_enabled": {
				Type:     schema.TypeBool,
				Computed: true,
			},
			"map_root_user": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"export_id": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func dataSourceNfsExportRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	path := d.Get("path").(string)
	zone := d.Get("zone").(string)

	export, err := findNfsExport(ctx, c, path, zone)
	if err != nil {
		return diag.Errorf("Unable to list NFS exports in zone %s: %s", zone, client.DetermineError(err))
	}

	if export == nil {
		return diag.Errorf("No NFS export found for path %s in zone %s", path, zone)
	}

	tflog.Debug(ctx, "Retrieved NFS export for "+path, map[string]interface{}{"export": export})

	d.SetId(strconv.Itoa(export.ID))
	setNfsExportState(d, export)

	return nil
}
