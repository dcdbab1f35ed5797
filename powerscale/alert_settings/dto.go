package alertsettings

type MaintenanceWindow struct {
	Start    int64 `json:"start"`
	Duration int64 `json:"duration"`
}

type EventSettingsDto struct {
	Maintenance     MaintenanceWindow `json:"maintenance"`
	RetentionPeriod int64             `json:"retention_period"`
	StorageLimit    int64             `json:"storage_limit"`
}

type GetEventSettingsResponse struct {
	Settings EventSettingsDto `json:"settings"`
}

type UpdateEventSettingsRequest struct {
	Maintenance            *MaintenanceWindow `json:"maintenance,omitempty"`
	RetentionPeriod        *int64             `json:"retention_period,omitempty"`
	StorageLimit           *int64             `json:"storage_limit,omitempty"`
	ClearMaintenanceWindow *bool              `json:"clear_maintenance_window,omitempty"`
}
