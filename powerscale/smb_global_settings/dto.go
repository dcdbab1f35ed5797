package smbglobalsettings

type SmbGlobalSettingsDto struct {
	Service               bool   `json:"service"`
	AccessBasedShareEnum  bool   `json:"access_based_share_enum"`
	DotSnapAccessibleRoot bool   `json:"dot_snap_accessible_root"`
	SupportSmb2           bool   `json:"support_smb2"`
	SupportSmb3Encryption bool   `json:"support_smb3_encryption"`
	ServerString          string `json:"server_string"`
}

type GetSmbGlobalSettingsResponse struct {
	Settings SmbGlobalSettingsDto `json:"settings"`
}

type UpdateSmbGlobalSettingsRequest struct {
	Service               *bool   `json:"service,omitempty"`
	AccessBasedShareEnum  *bool   `json:"access_based_share_enum,omitempty"`
	DotSnapAccessibleRoot *bool   `json:"dot_snap_accessible_root,omitempty"`
	SupportSmb2           *bool   `json:"support_smb2,omitempty"`
	SupportSmb3Encryption *bool   `json:"support_smb3_encryption,omitempty"`
	ServerString          *string `json:"server_string,omitempty"`
}
