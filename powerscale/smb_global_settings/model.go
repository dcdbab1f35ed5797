package smbglobalsettings

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type smbGlobalSettingsModel struct {
	Id                    types.String `tfsdk:"id"`
	Service               types.Bool   `tfsdk:"service"`
	AccessBasedShareEnum  types.Bool   `tfsdk:"access_based_share_enum"`
	DotSnapAccessibleRoot types.Bool   `tfsdk:"dot_snap_accessible_root"`
	SupportSmb2           types.Bool   `tfsdk:"support_smb2"`
	SupportSmb3Encryption types.Bool   `tfsdk:"support_smb3_encryption"`
	ServerString          types.String `tfsdk:"server_string"`
}

func newSmbGlobalSettingsModel(settings SmbGlobalSettingsDto) smbGlobalSettingsModel {
	return smbGlobalSettingsModel{
		Id:                    types.StringValue(settingsID),
		Service:               types.BoolValue(settings.Service),
		AccessBasedShareEnum:  types.BoolValue(settings.AccessBasedShareEnum),
		DotSnapAccessibleRoot: types.BoolValue(settings.DotSnapAccessibleRoot),
		SupportSmb2:           types.BoolValue(settings.SupportSmb2),
		SupportSmb3Encryption: types.BoolValue(settings.SupportSmb3Encryption),
		ServerString:          types.StringValue(settings.ServerString),
	}
}
