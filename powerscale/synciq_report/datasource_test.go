package synciqreport

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

func TestSyncReportsReadFollowsResume(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.Handle(http.MethodGet, client.ApiPath.SyncReports, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		if r.URL.Query().Get("resume") == "" {
			fakeonefs.WriteJSON(w, http.StatusOK, ListSyncReportsResponse{
				Reports: []SyncReportDto{{ID: "1-nightly", PolicyName: "nightly", State: "finished", TotalFiles: 10}},
				Resume:  "page-2",
			})
			return
		}
		fakeonefs.WriteJSON(w, http.StatusOK, ListSyncReportsResponse{
			Reports: []SyncReportDto{{ID: "2-nightly", PolicyName: "nightly", State: "failed", Errors: []string{"target unreachable"}}},
		})
	})

	d := NewSyncReportsDataSource().(*syncReportsDataSource)
	d.client = srv.Client(t)

	schemaResp := datasource.SchemaResponse{}
	d.Schema(context.Background(), datasource.SchemaRequest{}, &schemaResp)
	require.False(t, schemaResp.Diagnostics.HasError())

	config := syncReportsDatasourceConfigModel{
		Id:         types.StringNull(),
		PolicyName: types.StringValue("nightly"),
		NewerThan:  types.Int64Value(7),
	}

	req := datasource.ReadRequest{Config: fakeonefs.DataSourceConfig(t, schemaResp.Schema, &config)}
	resp := datasource.ReadResponse{State: fakeonefs.DataSourceState(schemaResp.Schema)}

	d.Read(context.Background(), req, &resp)
	require.False(t, resp.Diagnostics.HasError(), "%v", resp.Diagnostics)

	var state syncReportsDatasourceConfigModel
	require.False(t, resp.State.Get(context.Background(), &state).HasError())
	require.Len(t, state.Reports, 2)
	assert.Equal(t, "finished", state.Reports[0].State.ValueString())
	assert.Equal(t, []string{"target unreachable"}, state.Reports[1].Errors)
	assert.Equal(t, "synciq_reports/nightly", state.Id.ValueString())

	gets := srv.Requests(http.MethodGet, client.ApiPath.SyncReports)
	require.Len(t, gets, 2)
	assert.Equal(t, "nightly", gets[0].Query.Get("policy_name"))
	assert.Equal(t, "7", gets[0].Query.Get("newer_than"))
	assert.Equal(t, "page-2", gets[1].Query.Get("resume"))
	assert.Empty(t, gets[1].Query.Get("policy_name"))
}

func TestSyncTargetReportsMetadata(t *testing.T) {
	d := NewSyncTargetReportsDataSource()

	resp := datasource.MetadataResponse{}
	d.Metadata(context.Background(), datasource.MetadataRequest{ProviderTypeName: "powerscale"}, &resp)
	assert.Equal(t, "powerscale_synciq_target_reports", resp.TypeName)
}
