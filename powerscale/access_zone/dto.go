package accesszone

type AccessZoneDto struct {
	ID               string   `json:"id"`
	ZoneID           int      `json:"zone_id"`
	Name             string   `json:"name"`
	Path             string   `json:"path"`
	Groupnet         string   `json:"groupnet"`
	AuthProviders    []string `json:"auth_providers"`
	UserMappingRules []string `json:"user_mapping_rules"`
	System           bool     `json:"system"`
}

type GetAccessZoneResponse struct {
	Zones []AccessZoneDto `json:"zones"`
}

type CreateAccessZoneRequest struct {
	Name             string   `json:"name"`
	Path             string   `json:"path,omitempty"`
	Groupnet         string   `json:"groupnet,omitempty"`
	AuthProviders    []string `json:"auth_providers,omitempty"`
	UserMappingRules []string `json:"user_mapping_rules,omitempty"`
	CreatePath       *bool    `json:"create_path,omitempty"`
}

type UpdateAccessZoneRequest struct {
	Path             *string  `json:"path,omitempty"`
	AuthProviders    []string `json:"auth_providers,omitempty"`
	UserMappingRules []string `json:"user_mapping_rules,omitempty"`
}

// AccessZoneSpec is the desired state read from configuration. Nil slices
// are left unmanaged.
type AccessZoneSpec struct {
	Path             string
	AuthProviders    []string
	UserMappingRules []string
}
