package groupnet

type GroupnetDto struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Description             string   `json:"description"`
	DNSServers              []string `json:"dns_servers"`
	DNSSearch               []string `json:"dns_search"`
	DNSCacheEnabled         bool     `json:"dns_cache_enabled"`
	AllowWildcardSubdomains bool     `json:"allow_wildcard_subdomains"`
	ServerSideDNSSearch     bool     `json:"server_side_dns_search"`
	Subnets                 []string `json:"subnets"`
}

type GetGroupnetResponse struct {
	Groupnets []GroupnetDto `json:"groupnets"`
}

type CreateGroupnetRequest struct {
	Name                    string   `json:"name"`
	Description             string   `json:"description,omitempty"`
	DNSServers              []string `json:"dns_servers,omitempty"`
	DNSSearch               []string `json:"dns_search,omitempty"`
	DNSCacheEnabled         *bool    `json:"dns_cache_enabled,omitempty"`
	AllowWildcardSubdomains *bool    `json:"allow_wildcard_subdomains,omitempty"`
	ServerSideDNSSearch     *bool    `json:"server_side_dns_search,omitempty"`
}

type UpdateGroupnetRequest struct {
	Description             *string  `json:"description,omitempty"`
	DNSServers              []string `json:"dns_servers,omitempty"`
	DNSSearch               []string `json:"dns_search,omitempty"`
	DNSCacheEnabled         *bool    `json:"dns_cache_enabled,omitempty"`
	AllowWildcardSubdomains *bool    `json:"allow_wildcard_subdomains,omitempty"`
	ServerSideDNSSearch     *bool    `json:"server_side_dns_search,omitempty"`
}

type GroupnetSpec struct {
	Description             *string
	DNSServers              []string
	DNSSearch               []string
	DNSCacheEnabled         *bool
	AllowWildcardSubdomains *bool
	ServerSideDNSSearch     *bool
}
