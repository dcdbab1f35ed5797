package networkpool

type IPRange struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

type PoolInterface struct {
	Iface string `json:"iface"`
	Lnn   int    `json:"lnn"`
}

type NetworkPoolDto struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Groupnet        string          `json:"groupnet"`
	Subnet          string          `json:"subnet"`
	Description     string          `json:"description"`
	AccessZone      string          `json:"access_zone"`
	AllocMethod     string          `json:"alloc_method"`
	Ranges          []IPRange       `json:"ranges"`
	Ifaces          []PoolInterface `json:"ifaces"`
	ScDNSZone       string          `json:"sc_dns_zone"`
	ScSubnet        string          `json:"sc_subnet"`
	ScConnectPolicy string          `json:"sc_connect_policy"`
}

type GetNetworkPoolResponse struct {
	Pools []NetworkPoolDto `json:"pools"`
}

type CreateNetworkPoolRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	AccessZone      string          `json:"access_zone,omitempty"`
	AllocMethod     string          `json:"alloc_method,omitempty"`
	Ranges          []IPRange       `json:"ranges,omitempty"`
	Ifaces          []PoolInterface `json:"ifaces,omitempty"`
	ScDNSZone       string          `json:"sc_dns_zone,omitempty"`
	ScSubnet        string          `json:"sc_subnet,omitempty"`
	ScConnectPolicy string          `json:"sc_connect_policy,omitempty"`
}

type UpdateNetworkPoolRequest struct {
	Description     *string         `json:"description,omitempty"`
	AccessZone      *string         `json:"access_zone,omitempty"`
	AllocMethod     *string         `json:"alloc_method,omitempty"`
	Ranges          []IPRange       `json:"ranges,omitempty"`
	Ifaces          []PoolInterface `json:"ifaces,omitempty"`
	ScDNSZone       *string         `json:"sc_dns_zone,omitempty"`
	ScSubnet        *string         `json:"sc_subnet,omitempty"`
	ScConnectPolicy *string         `json:"sc_connect_policy,omitempty"`
}

// NetworkPoolSpec carries the configured attributes; nil means unmanaged.
type NetworkPoolSpec struct {
	Description     *string
	AccessZone      *string
	AllocMethod     *string
	Ranges          []IPRange
	Ifaces          []PoolInterface
	ScDNSZone       *string
	ScSubnet        *string
	ScConnectPolicy *string
}
