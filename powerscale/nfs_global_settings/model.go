package nfsglobalsettings

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type nfsGlobalSettingsModel struct {
	Id             types.String `tfsdk:"id"`
	Service        types.Bool   `tfsdk:"service"`
	Nfsv3Enabled   types.Bool   `tfsdk:"nfsv3_enabled"`
	Nfsv4Enabled   types.Bool   `tfsdk:"nfsv4_enabled"`
	RpcMaxthreads  types.Int64  `tfsdk:"rpc_maxthreads"`
	RpcMinthreads  types.Int64  `tfsdk:"rpc_minthreads"`
	NfsRdmaEnabled types.Bool   `tfsdk:"nfs_rdma_enabled"`
}

func newNfsGlobalSettingsModel(settings NfsGlobalSettingsDto) nfsGlobalSettingsModel {
	return nfsGlobalSettingsModel{
		Id:             types.StringValue(settingsID),
		Service:        types.BoolValue(settings.Service),
		Nfsv3Enabled:   types.BoolValue(settings.Nfsv3Enabled),
		Nfsv4Enabled:   types.BoolValue(settings.Nfsv4Enabled),
		RpcMaxthreads:  types.Int64Value(settings.RpcMaxthreads),
		RpcMinthreads:  types.Int64Value(settings.RpcMinthreads),
		NfsRdmaEnabled: types.BoolValue(settings.NfsRdmaEnabled),
	}
}
