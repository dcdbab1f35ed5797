package smbglobalsettings

var resourceDescriptions = map[string]string{
	"resource":                 "Manages the cluster-wide SMB settings. Destroying the resource only removes it from state.",
	"service":                  "Whether the SMB service is enabled.",
	"access_based_share_enum":  "Only enumerate shares the user has access to.",
	"dot_snap_accessible_root": "Allow access to .snapshot directories in the share root.",
	"support_smb2":             "Whether SMB2 and later dialects are supported.",
	"support_smb3_encryption":  "Whether SMB3 encryption is supported.",
	"server_string":            "The server description advertised to SMB clients.",
}
