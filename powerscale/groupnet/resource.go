package groupnet

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

func ResourceGroupnet() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a network groupnet and its DNS settings.",
		CreateContext: resourceGroupnetCreate,
		ReadContext:   resourceGroupnetRead,
		UpdateContext: resourceGroupnetUpdate,
		DeleteContext: resourceGroupnetDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"dns_servers": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: validation.IsIPAddress,
				},
			},
			"dns_search": {
				Type:     schema.TypeList,
				Optional: true,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"dns_cache_enabled": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"allow_wildcard_subdomains": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"server_side_dns_search": {
				Type:     schema.TypeBool,
				Optional: true,
				Computed: true,
			},
			"subnets": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
		},
	}
}

func resourceGroupnetCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec := expandGroupnetSpec(d)
	createOpts := CreateGroupnetRequest{
		Name:                    d.Get("name").(string),
		DNSServers:              spec.DNSServers,
		DNSSearch:               spec.DNSSearch,
		DNSCacheEnabled:         spec.DNSCacheEnabled,
		AllowWildcardSubdomains: spec.AllowWildcardSubdomains,
		ServerSideDNSSearch:     spec.ServerSideDNSSearch,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}

	tflog.Debug(ctx, "powerscale_groupnet create options", map[string]interface{}{"create_opts": createOpts})

	if _, err := c.Post(ctx, client.ApiPath.Groupnets, createOpts, &client.CreateResponse{}, nil); err != nil {
		return diag.Errorf("Error creating powerscale_groupnet %s: %s", createOpts.Name, client.DetermineError(err))
	}

	d.SetId(createOpts.Name)

	return resourceGroupnetRead(ctx, d, meta)
}

func resourceGroupnetRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	groupnet, err := getGroupnet(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_groupnet"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_groupnet "+d.Id(), map[string]interface{}{"groupnet": groupnet})

	d.Set("name", groupnet.Name)
	d.Set("description", groupnet.Description)
	d.Set("dns_servers", groupnet.DNSServers)
	d.Set("dns_search", groupnet.DNSSearch)
	d.Set("dns_cache_enabled", groupnet.DNSCacheEnabled)
	d.Set("allow_wildcard_subdomains", groupnet.AllowWildcardSubdomains)
	d.Set("server_side_dns_search", groupnet.ServerSideDNSSearch)
	d.Set("subnets", groupnet.Subnets)

	return nil
}

func resourceGroupnetUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getGroupnet(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_groupnet %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildGroupnetUpdate(ctx, *current, expandGroupnetSpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_groupnet update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.GroupnetWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_groupnet %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceGroupnetRead(ctx, d, meta)
}

func resourceGroupnetDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.GroupnetWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_groupnet %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
