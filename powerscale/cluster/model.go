package cluster

import (
	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-powerscale/powerscale/helper/client"
)

type clusterDatasourceModel struct {
	Id           types.String `tfsdk:"id"`
	Name         types.String `tfsdk:"name"`
	Description  types.String `tfsdk:"description"`
	Guid         types.String `tfsdk:"guid"`
	OnefsRelease types.String `tfsdk:"onefs_release"`
	OnefsBuild   types.String `tfsdk:"onefs_build"`
	NodeCount    types.Int64  `tfsdk:"node_count"`
	LocalLnn     types.Int64  `tfsdk:"local_lnn"`
}

func newClusterDatasourceModel(cfg client.ClusterConfig) clusterDatasourceModel {
	return clusterDatasourceModel{
		Id:           types.StringValue(cfg.Guid),
		Name:         types.StringValue(cfg.Name),
		Description:  types.StringValue(cfg.Description),
		Guid:         types.StringValue(cfg.Guid),
		OnefsRelease: types.StringValue(cfg.OnefsVersion.Release),
		OnefsBuild:   types.StringValue(cfg.OnefsVersion.Build),
		NodeCount:    types.Int64Value(int64(len(cfg.Devices))),
		LocalLnn:     types.Int64Value(int64(cfg.LocalLnn)),
	}
}
