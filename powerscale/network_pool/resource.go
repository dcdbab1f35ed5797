package networkpool

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

func ResourceNetworkPool() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages an IP address pool within a groupnet subnet.",
		CreateContext: resourceNetworkPoolCreate,
		ReadContext:   resourceNetworkPoolRead,
		UpdateContext: resourceNetworkPoolUpdate,
		DeleteContext: resourceNetworkPoolDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceNetworkPoolImport,
		},
		Schema: map[string]*schema.Schema{
			"groupnet": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"subnet": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
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
			"access_zone": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"alloc_method": {
				Type:         schema.TypeString,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validation.StringInSlice([]string{"static", "dynamic"}, false),
			},
			"ranges": {
				Type:     schema.TypeList,
				Optional: true,
				Computed: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"low": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.IsIPAddress,
						},
						"high": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.IsIPAddress,
						},
					},
				},
			},
			"ifaces": {
				Type:     schema.TypeSet,
				Optional: true,
				Computed: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"iface": {
							Type:     schema.TypeString,
							Required: true,
						},
						"lnn": {
							Type:         schema.TypeInt,
							Required:     true,
							ValidateFunc: validation.IntAtLeast(1),
						},
					},
				},
			},
			"sc_dns_zone": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"sc_subnet": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"sc_connect_policy": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
				ValidateFunc: validation.StringInSlice([]string{
					"round_robin", "conn_count", "throughput", "cpu_usage",
				}, false),
			},
		},
	}
}

func resourceNetworkPoolCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	groupnet := d.Get("groupnet").(string)
	subnet := d.Get("subnet").(string)

	spec := expandNetworkPoolSpec(d)
	createOpts := CreateNetworkPoolRequest{
		Name:   d.Get("name").(string),
		Ranges: spec.Ranges,
		Ifaces: spec.Ifaces,
	}
	if spec.Description != nil {
		createOpts.Description = *spec.Description
	}
	if spec.AccessZone != nil {
		createOpts.AccessZone = *spec.AccessZone
	}
	if spec.AllocMethod != nil {
		createOpts.AllocMethod = *spec.AllocMethod
	}
	if spec.ScDNSZone != nil {
		createOpts.ScDNSZone = *spec.ScDNSZone
	}
	if spec.ScSubnet != nil {
		createOpts.ScSubnet = *spec.ScSubnet
	}
	if spec.ScConnectPolicy != nil {
		createOpts.ScConnectPolicy = *spec.ScConnectPolicy
	}

	tflog.Debug(ctx, "powerscale_network_pool create options", map[string]interface{}{"create_opts": createOpts})

	lockKey := subnetLockKey(groupnet, subnet)
	config.MutexKV.LockKey(lockKey)
	defer config.MutexKV.UnlockKey(lockKey)

	if _, err := c.Post(ctx, client.ApiPath.NetworkPools(groupnet, subnet), createOpts, &client.CreateResponse{}, nil); err != nil {
		return diag.Errorf("Error creating powerscale_network_pool %s: %s", createOpts.Name, client.DetermineError(err))
	}

	d.SetId(networkPoolID(groupnet, subnet, createOpts.Name))

	return resourceNetworkPoolRead(ctx, d, meta)
}

func resourceNetworkPoolRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	groupnet, subnet, name, err := parseNetworkPoolID(d.Id())
	if err != nil {
		return diag.FromErr(err)
	}

	pool, err := getNetworkPool(ctx, c, groupnet, subnet, name)
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_network_pool"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_network_pool "+d.Id(), map[string]interface{}{"pool": pool})

	d.Set("groupnet", groupnet)
	d.Set("subnet", subnet)
	d.Set("name", name)
	d.Set("description", pool.Description)
	d.Set("access_zone", pool.AccessZone)
	d.Set("alloc_method", pool.AllocMethod)
	d.Set("ranges", flattenRanges(pool.Ranges))
	d.Set("ifaces", flattenIfaces(pool.Ifaces))
	d.Set("sc_dns_zone", pool.ScDNSZone)
	d.Set("sc_subnet", pool.ScSubnet)
	d.Set("sc_connect_policy", pool.ScConnectPolicy)

	return nil
}

func resourceNetworkPoolUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	groupnet, subnet, name, err := parseNetworkPoolID(d.Id())
	if err != nil {
		return diag.FromErr(err)
	}

	lockKey := subnetLockKey(groupnet, subnet)
	config.MutexKV.LockKey(lockKey)
	defer config.MutexKV.UnlockKey(lockKey)

	current, err := getNetworkPool(ctx, c, groupnet, subnet, name)
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_network_pool %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildNetworkPoolUpdate(*current, expandNetworkPoolSpec(d))
	if changed {
		tflog.Debug(ctx, "powerscale_network_pool update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.NetworkPoolWithId(groupnet, subnet, name), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_network_pool %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceNetworkPoolRead(ctx, d, meta)
}

func resourceNetworkPoolDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	groupnet, subnet, name, err := parseNetworkPoolID(d.Id())
	if err != nil {
		return diag.FromErr(err)
	}

	lockKey := subnetLockKey(groupnet, subnet)
	config.MutexKV.LockKey(lockKey)
	defer config.MutexKV.UnlockKey(lockKey)

	if _, err := c.Delete(ctx, client.ApiPath.NetworkPoolWithId(groupnet, subnet, name), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_network_pool %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}

func resourceNetworkPoolImport(ctx context.Context, d *schema.ResourceData, meta interface{}) ([]*schema.ResourceData, error) {
	if _, _, _, err := parseNetworkPoolID(d.Id()); err != nil {
		return nil, err
	}
	return []*schema.ResourceData{d}, nil
}
