package accesszone

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
)

func DataSourceAccessZone() *schema.Resource {
	return &schema.Resource{
		Description: "Reads an existing access zone.",
		ReadContext: dataSourceAccessZoneRead,
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
			},
			"path": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"groupnet": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"auth_providers": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"user_mapping_rules": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
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

func dataSourceAccessZoneRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	name := d.Get("name").(string)
	zone, err := getAccessZone(ctx, c, name)
	if err != nil {
		return diag.Errorf("Unable to retrieve access zone %s: %s", name, client.DetermineError(err))
	}

	tflog.Debug(ctx, "Retrieved access zone "+name, map[string]interface{}{"zone": zone})

	d.SetId(zone.Name)
	setAccessZoneState(d, zone)

	return nil
}
