package alertsettings

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type alertSettingsModel struct {
	Id                  types.String `tfsdk:"id"`
	MaintenanceStart    types.Int64  `tfsdk:"maintenance_start"`
	MaintenanceDuration types.Int64  `tfsdk:"maintenance_duration"`
	RetentionDays       types.Int64  `tfsdk:"retention_days"`
	StorageLimit        types.Int64  `tfsdk:"storage_limit"`
}

func newAlertSettingsModel(settings EventSettingsDto) alertSettingsModel {
	return alertSettingsModel{
		Id:                  types.StringValue(settingsID),
		MaintenanceStart:    types.Int64Value(settings.Maintenance.Start),
		MaintenanceDuration: types.Int64Value(settings.Maintenance.Duration),
		RetentionDays:       types.Int64Value(settings.RetentionPeriod),
		StorageLimit:        types.Int64Value(settings.StorageLimit),
	}
}
