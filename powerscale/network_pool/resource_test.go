package networkpool

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

var pool0 = NetworkPoolDto{
	ID:          "groupnet0.subnet0.pool1",
	Name:        "pool1",
	Groupnet:    "groupnet0",
	Subnet:      "subnet0",
	AccessZone:  "System",
	AllocMethod: "static",
	Ranges: []IPRange{
		{Low: "10.0.0.10", High: "10.0.0.20"},
		{Low: "10.0.0.30", High: "10.0.0.40"},
	},
	Ifaces: []PoolInterface{
		{Iface: "ext-1", Lnn: 1},
		{Iface: "ext-1", Lnn: 2},
	},
	ScConnectPolicy: "round_robin",
}

func TestParseNetworkPoolID(t *testing.T) {
	g, s, p, err := parseNetworkPoolID("groupnet0.subnet0.pool1")
	require.NoError(t, err)
	assert.Equal(t, []string{"groupnet0", "subnet0", "pool1"}, []string{g, s, p})

	_, _, _, err = parseNetworkPoolID("pool1")
	assert.Error(t, err)
}

func TestBuildNetworkPoolUpdate(t *testing.T) {
	_, changed := buildNetworkPoolUpdate(pool0, NetworkPoolSpec{
		AccessZone: ptr.To("System"),
		Ranges: []IPRange{
			{Low: "10.0.0.30", High: "10.0.0.40"},
			{Low: "10.0.0.10", High: "10.0.0.20"},
		},
		Ifaces: []PoolInterface{{Iface: "ext-1", Lnn: 2}, {Iface: "ext-1", Lnn: 1}},
	})
	assert.False(t, changed)

	update, changed := buildNetworkPoolUpdate(pool0, NetworkPoolSpec{
		Ifaces:          []PoolInterface{{Iface: "ext-1", Lnn: 1}, {Iface: "ext-1", Lnn: 2}, {Iface: "ext-1", Lnn: 3}},
		ScConnectPolicy: ptr.To("conn_count"),
	})
	assert.True(t, changed)
	assert.Len(t, update.Ifaces, 3)
	assert.Equal(t, ptr.To("conn_count"), update.ScConnectPolicy)
	assert.Nil(t, update.Ranges)
	assert.Nil(t, update.AccessZone)
}

func TestResourceNetworkPoolUpdate(t *testing.T) {
	srv := fakeonefs.New(t)
	path := client.ApiPath.NetworkPoolWithId("groupnet0", "subnet0", "pool1")
	srv.JSON(http.MethodGet, path, http.StatusOK, GetNetworkPoolResponse{Pools: []NetworkPoolDto{pool0}})
	srv.Status(http.MethodPut, path, http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceNetworkPool().Schema, map[string]interface{}{
		"groupnet":    "groupnet0",
		"subnet":      "subnet0",
		"name":        "pool1",
		"access_zone": "zone1",
		"ranges": []interface{}{
			map[string]interface{}{"low": "10.0.0.30", "high": "10.0.0.40"},
			map[string]interface{}{"low": "10.0.0.10", "high": "10.0.0.20"},
		},
	})
	d.SetId("groupnet0.subnet0.pool1")

	diags := resourceNetworkPoolUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, path)
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"access_zone":"zone1"}`, string(puts[0].Body))
	assert.Equal(t, "groupnet0", d.Get("groupnet"))
}

func TestResourceNetworkPoolCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.NetworkPools("groupnet0", "subnet0"), http.StatusCreated, map[string]any{"id": "groupnet0.subnet0.pool1"})
	srv.JSON(http.MethodGet, client.ApiPath.NetworkPoolWithId("groupnet0", "subnet0", "pool1"), http.StatusOK, GetNetworkPoolResponse{Pools: []NetworkPoolDto{pool0}})

	d := schema.TestResourceDataRaw(t, ResourceNetworkPool().Schema, map[string]interface{}{
		"groupnet":     "groupnet0",
		"subnet":       "subnet0",
		"name":         "pool1",
		"alloc_method": "static",
		"ifaces": []interface{}{
			map[string]interface{}{"iface": "ext-1", "lnn": 2},
			map[string]interface{}{"iface": "ext-1", "lnn": 1},
		},
	})

	diags := resourceNetworkPoolCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "groupnet0.subnet0.pool1", d.Id())

	posts := srv.Requests(http.MethodPost, client.ApiPath.NetworkPools("groupnet0", "subnet0"))
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"name": "pool1",
		"alloc_method": "static",
		"ifaces": [{"iface": "ext-1", "lnn": 1}, {"iface": "ext-1", "lnn": 2}]
	}`, string(posts[0].Body))
	assert.Len(t, d.Get("ranges").([]interface{}), 2)
}

func TestResourceNetworkPoolReadMissing(t *testing.T) {
	srv := fakeonefs.New(t)

	d := schema.TestResourceDataRaw(t, ResourceNetworkPool().Schema, map[string]interface{}{
		"groupnet": "groupnet0",
		"subnet":   "subnet0",
		"name":     "pool1",
	})
	d.SetId("groupnet0.subnet0.pool1")

	diags := resourceNetworkPoolRead(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, d.Id())
}
