package synciqglobalsettings

type SyncSettingsDto struct {
	Service            string `json:"service"`
	EncryptionRequired bool   `json:"encryption_required"`
	ReportMaxAge       int64  `json:"report_max_age"`
	ReportMaxCount     int64  `json:"report_max_count"`
	ForceInterface     bool   `json:"force_interface"`
}

type GetSyncSettingsResponse struct {
	Settings SyncSettingsDto `json:"settings"`
}

type UpdateSyncSettingsRequest struct {
	Service            *string `json:"service,omitempty"`
	EncryptionRequired *bool   `json:"encryption_required,omitempty"`
	ReportMaxAge       *int64  `json:"report_max_age,omitempty"`
	ReportMaxCount     *int64  `json:"report_max_count,omitempty"`
	ForceInterface     *bool   `json:"force_interface,omitempty"`
}
