package networkpool

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func networkPoolID(groupnet, subnet, name string) string {
	return fmt.Sprintf("%s.%s.%s", groupnet, subnet, name)
}

func parseNetworkPoolID(id string) (string, string, string, error) {
	parts, err := util.ParsePairedIDs(id, ".", 3, "network pool")
	if err != nil {
		return "", "", "", err
	}
	return parts[0], parts[1], parts[2], nil
}

// subnetLockKey scopes write serialisation to the parent subnet.
func subnetLockKey(groupnet, subnet string) string {
	return "powerscale_network_pool/" + groupnet + "." + subnet
}

func getNetworkPool(ctx context.Context, c *client.Client, groupnet, subnet, name string) (*NetworkPoolDto, error) {
	path := client.ApiPath.NetworkPoolWithId(groupnet, subnet, name)
	resp := &GetNetworkPoolResponse{}
	if _, err := c.Get(ctx, path, resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Pools) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    path,
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("network pool %s not found", networkPoolID(groupnet, subnet, name))),
		}
	}

	return &resp.Pools[0], nil
}

func optionalString(d *schema.ResourceData, key string) *string {
	if v, ok := d.GetOk(key); ok {
		return ptr.To(v.(string))
	}
	return nil
}

func expandNetworkPoolSpec(d *schema.ResourceData) NetworkPoolSpec {
	spec := NetworkPoolSpec{
		AccessZone:      optionalString(d, "access_zone"),
		AllocMethod:     optionalString(d, "alloc_method"),
		ScDNSZone:       optionalString(d, "sc_dns_zone"),
		ScSubnet:        optionalString(d, "sc_subnet"),
		ScConnectPolicy: optionalString(d, "sc_connect_policy"),
	}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	if v, ok := d.GetOk("ranges"); ok {
		spec.Ranges = []IPRange{}
		for _, raw := range v.([]interface{}) {
			r := raw.(map[string]interface{})
			spec.Ranges = append(spec.Ranges, IPRange{Low: r["low"].(string), High: r["high"].(string)})
		}
	}

	if v, ok := d.GetOk("ifaces"); ok {
		spec.Ifaces = []PoolInterface{}
		for _, raw := range v.(*schema.Set).List() {
			i := raw.(map[string]interface{})
			spec.Ifaces = append(spec.Ifaces, PoolInterface{Iface: i["iface"].(string), Lnn: i["lnn"].(int)})
		}
		sortIfaces(spec.Ifaces)
	}

	return spec
}

func sortIfaces(ifaces []PoolInterface) {
	sort.Slice(ifaces, func(i, j int) bool {
		if ifaces[i].Lnn != ifaces[j].Lnn {
			return ifaces[i].Lnn < ifaces[j].Lnn
		}
		return ifaces[i].Iface < ifaces[j].Iface
	})
}

func rangeKeys(ranges []IPRange) []string {
	keys := make([]string, 0, len(ranges))
	for _, r := range ranges {
		keys = append(keys, r.Low+"-"+r.High)
	}
	return keys
}

func ifaceKeys(ifaces []PoolInterface) []string {
	keys := make([]string, 0, len(ifaces))
	for _, i := range ifaces {
		keys = append(keys, fmt.Sprintf("%d:%s", i.Lnn, i.Iface))
	}
	return keys
}

func stringChanged(desired *string, current string) bool {
	return desired != nil && *desired != current
}

// buildNetworkPoolUpdate diffs desired against current. Ranges and member
// interfaces are compared as sets.
func buildNetworkPoolUpdate(current NetworkPoolDto, desired NetworkPoolSpec) (UpdateNetworkPoolRequest, bool) {
	update := UpdateNetworkPoolRequest{}
	changed := false

	if stringChanged(desired.Description, current.Description) {
		update.Description = desired.Description
		changed = true
	}

	if stringChanged(desired.AccessZone, current.AccessZone) {
		update.AccessZone = desired.AccessZone
		changed = true
	}

	if stringChanged(desired.AllocMethod, current.AllocMethod) {
		update.AllocMethod = desired.AllocMethod
		changed = true
	}

	if desired.Ranges != nil && !util.StringSetsEqual(rangeKeys(desired.Ranges), rangeKeys(current.Ranges)) {
		update.Ranges = desired.Ranges
		changed = true
	}

	if desired.Ifaces != nil && !util.StringSetsEqual(ifaceKeys(desired.Ifaces), ifaceKeys(current.Ifaces)) {
		update.Ifaces = desired.Ifaces
		changed = true
	}

	if stringChanged(desired.ScDNSZone, current.ScDNSZone) {
		update.ScDNSZone = desired.ScDNSZone
		changed = true
	}

	if stringChanged(desired.ScSubnet, current.ScSubnet) {
		update.ScSubnet = desired.ScSubnet
		changed = true
	}

	if stringChanged(desired.ScConnectPolicy, current.ScConnectPolicy) {
		update.ScConnectPolicy = desired.ScConnectPolicy
		changed = true
	}

	return update, changed
}

func flattenRanges(ranges []IPRange) []interface{} {
	res := make([]interface{}, 0, len(ranges))
	for _, r := range ranges {
		res = append(res, map[string]interface{}{"low": r.Low, "high": r.High})
	}
	return res
}

func flattenIfaces(ifaces []PoolInterface) []interface{} {
	res := make([]interface{}, 0, len(ifaces))
	for _, i := range ifaces {
		res = append(res, map[string]interface{}{"iface": i.Iface, "lnn": i.Lnn})
	}
	return res
}
