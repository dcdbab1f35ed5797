package smbshare

import "terraform-provider-powerscale/powerscale/helper/client"

type SharePermission struct {
	Permission     string         `json:"permission"`
	PermissionType string         `json:"permission_type"`
	Trustee        client.Persona `json:"trustee"`
}

type SmbShareDto struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Path                   string            `json:"path"`
	Zone                   string            `json:"zone"`
	Description            string            `json:"description"`
	Browsable              bool              `json:"browsable"`
	AccessBasedEnumeration bool              `json:"access_based_enumeration"`
	CaTimeout              int               `json:"ca_timeout"`
	DirectoryCreateMask    int               `json:"directory_create_mask"`
	FileCreateMask         int               `json:"file_create_mask"`
	Permissions            []SharePermission `json:"permissions"`
}

type GetSmbShareResponse struct {
	Shares []SmbShareDto `json:"shares"`
}

type SmbShareQuery struct {
	Zone string `q:"zone"`
}

type CreateSmbShareRequest struct {
	Name                   string            `json:"name"`
	Path                   string            `json:"path"`
	Description            string            `json:"description,omitempty"`
	CreatePath             *bool             `json:"create_path,omitempty"`
	Browsable              *bool             `json:"browsable,omitempty"`
	AccessBasedEnumeration *bool             `json:"access_based_enumeration,omitempty"`
	CaTimeout              *int              `json:"ca_timeout,omitempty"`
	DirectoryCreateMask    *int              `json:"directory_create_mask,omitempty"`
	FileCreateMask         *int              `json:"file_create_mask,omitempty"`
	Permissions            []SharePermission `json:"permissions,omitempty"`
}

type UpdateSmbShareRequest struct {
	Name                   *string            `json:"name,omitempty"`
	Path                   *string            `json:"path,omitempty"`
	Description            *string            `json:"description,omitempty"`
	Browsable              *bool              `json:"browsable,omitempty"`
	AccessBasedEnumeration *bool              `json:"access_based_enumeration,omitempty"`
	CaTimeout              *int               `json:"ca_timeout,omitempty"`
	DirectoryCreateMask    *int               `json:"directory_create_mask,omitempty"`
	FileCreateMask         *int               `json:"file_create_mask,omitempty"`
	Permissions            *[]SharePermission `json:"permissions,omitempty"`
}

type SmbShareSpec struct {
	Name                   string
	Path                   string
	Description            *string
	Browsable              *bool
	AccessBasedEnumeration *bool
	CaTimeout              *int
	DirectoryCreateMask    *int
	FileCreateMask         *int
	Permissions            []SharePermission
}
