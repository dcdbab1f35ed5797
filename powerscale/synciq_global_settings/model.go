package synciqglobalsettings

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type syncSettingsModel struct {
	Id                 types.String `tfsdk:"id"`
	Service            types.String `tfsdk:"service"`
	EncryptionRequired types.Bool   `tfsdk:"encryption_required"`
	ReportMaxAge       types.Int64  `tfsdk:"report_max_age"`
	ReportMaxCount     types.Int64  `tfsdk:"report_max_count"`
	ForceInterface     types.Bool   `tfsdk:"force_interface"`
}

func newSyncSettingsModel(settings SyncSettingsDto) syncSettingsModel {
	return syncSettingsModel{
		Id:                 types.StringValue(settingsID),
		Service:            types.StringValue(settings.Service),
		EncryptionRequired: types.BoolValue(settings.EncryptionRequired),
		ReportMaxAge:       types.Int64Value(settings.ReportMaxAge),
		ReportMaxCount:     types.Int64Value(settings.ReportMaxCount),
		ForceInterface:     types.BoolValue(settings.ForceInterface),
	}
}
