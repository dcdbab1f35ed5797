package smbglobalsettings

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

func clusterSettings() SmbGlobalSettingsDto {
	return SmbGlobalSettingsDto{
		Service:      true,
		SupportSmb2:  true,
		ServerString: "PowerScale Server",
	}
}

func TestBuildSmbGlobalSettingsUpdate(t *testing.T) {
	plan := newSmbGlobalSettingsModel(clusterSettings())
	_, changed := buildSmbGlobalSettingsUpdate(clusterSettings(), plan)
	assert.False(t, changed)

	plan.SupportSmb3Encryption = types.BoolValue(true)
	plan.ServerString = types.StringUnknown()

	update, changed := buildSmbGlobalSettingsUpdate(clusterSettings(), plan)
	assert.True(t, changed)
	require.NotNil(t, update.SupportSmb3Encryption)
	assert.True(t, *update.SupportSmb3Encryption)
	assert.Nil(t, update.ServerString)
	assert.Nil(t, update.Service)
}

func TestSmbGlobalSettingsRead(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SmbGlobalSettings, http.StatusOK, GetSmbGlobalSettingsResponse{Settings: clusterSettings()})

	r := &smbGlobalSettingsResource{client: srv.Client(t)}

	schemaResp := resource.SchemaResponse{}
	r.Schema(context.Background(), resource.SchemaRequest{}, &schemaResp)
	require.False(t, schemaResp.Diagnostics.HasError())

	prior := newSmbGlobalSettingsModel(SmbGlobalSettingsDto{})
	state := fakeonefs.ResourceState(t, schemaResp.Schema, &prior)

	resp := resource.ReadResponse{State: state}
	r.Read(context.Background(), resource.ReadRequest{State: state}, &resp)
	require.False(t, resp.Diagnostics.HasError(), "%v", resp.Diagnostics)

	var got smbGlobalSettingsModel
	require.False(t, resp.State.Get(context.Background(), &got).HasError())
	assert.True(t, got.Service.ValueBool())
	assert.Equal(t, "PowerScale Server", got.ServerString.ValueString())
	assert.Empty(t, srv.Writes())
}
