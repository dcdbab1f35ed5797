package groupnet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func getGroupnet(ctx context.Context, c *client.Client, name string) (*GroupnetDto, error) {
	resp := &GetGroupnetResponse{}
	if _, err := c.Get(ctx, client.ApiPath.GroupnetWithId(name), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Groupnets) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.GroupnetWithId(name),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("groupnet %s not found", name)),
		}
	}

	return &resp.Groupnets[0], nil
}

func expandGroupnetSpec(d *schema.ResourceData) GroupnetSpec {
	spec := GroupnetSpec{}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	if v, ok := d.GetOk("dns_servers"); ok {
		spec.DNSServers = util.ExpandStringSet(v)
	}

	if v, ok := d.GetOk("dns_search"); ok {
		spec.DNSSearch = util.ExpandToStringSlice(v.([]interface{}))
	}

	if v, ok := util.GetOkExists(d, "dns_cache_enabled"); ok {
		spec.DNSCacheEnabled = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "allow_wildcard_subdomains"); ok {
		spec.AllowWildcardSubdomains = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "server_side_dns_search"); ok {
		spec.ServerSideDNSSearch = ptr.To(v.(bool))
	}

	return spec
}

// buildGroupnetUpdate diffs desired against current. DNS servers are a set:
// the array keeps its own order, so only membership changes are sent.
func buildGroupnetUpdate(ctx context.Context, current GroupnetDto, desired GroupnetSpec) (UpdateGroupnetRequest, bool) {
	update := UpdateGroupnetRequest{}
	changed := false

	if desired.Description != nil && *desired.Description != current.Description {
		update.Description = desired.Description
		changed = true
	}

	if desired.DNSServers != nil && !util.StringSetsEqual(desired.DNSServers, current.DNSServers) {
		tflog.Debug(ctx, "powerscale_groupnet dns servers changed", map[string]interface{}{
			"added":   util.StringSetDifference(desired.DNSServers, current.DNSServers),
			"removed": util.StringSetDifference(current.DNSServers, desired.DNSServers),
		})
		update.DNSServers = desired.DNSServers
		changed = true
	}

	if desired.DNSSearch != nil && !util.StringSlicesEqual(desired.DNSSearch, current.DNSSearch) {
		update.DNSSearch = desired.DNSSearch
		changed = true
	}

	if desired.DNSCacheEnabled != nil && *desired.DNSCacheEnabled != current.DNSCacheEnabled {
		update.DNSCacheEnabled = desired.DNSCacheEnabled
		changed = true
	}

	if desired.AllowWildcardSubdomains != nil && *desired.AllowWildcardSubdomains != current.AllowWildcardSubdomains {
		update.AllowWildcardSubdomains = desired.AllowWildcardSubdomains
		changed = true
	}

	if desired.ServerSideDNSSearch != nil && *desired.ServerSideDNSSearch != current.ServerSideDNSSearch {
		update.ServerSideDNSSearch = desired.ServerSideDNSSearch
		changed = true
	}

	return update, changed
}
