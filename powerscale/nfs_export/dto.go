package nfsexport

import "terraform-provider-powerscale/powerscale/helper/client"

type MapRoot struct {
	Enabled *bool           `json:"enabled,omitempty"`
	User    *client.Persona `json:"user,omitempty"`
}

type NfsExportDto struct {
	ID               int      `json:"id"`
	Paths            []string `json:"paths"`
	Zone             string   `json:"zone"`
	Description      string   `json:"description"`
	Clients          []string `json:"clients"`
	ReadOnlyClients  []string `json:"read_only_clients"`
	ReadWriteClients []string `json:"read_write_clients"`
	RootClients      []string `json:"root_clients"`
	ReadOnly         bool     `json:"read_only"`
	AllDirs          bool     `json:"all_dirs"`
	SecurityFlavors  []string `json:"security_flavors"`
	MapRoot          MapRoot  `json:"map_root"`
}

type ListNfsExportsResponse struct {
	Exports []NfsExportDto `json:"exports"`
	Total   int            `json:"total"`
}

type NfsExportQuery struct {
	Zone                    string `q:"zone"`
	Path                    string `q:"path"`
	IgnoreUnresolvableHosts bool   `q:"ignore_unresolvable_hosts"`
}

type CreateNfsExportRequest struct {
	Paths            []string `json:"paths"`
	Description      string   `json:"description,omitempty"`
	Clients          []string `json:"clients,omitempty"`
	ReadOnlyClients  []string `json:"read_only_clients,omitempty"`
	ReadWriteClients []string `json:"read_write_clients,omitempty"`
	RootClients      []string `json:"root_clients,omitempty"`
	ReadOnly         *bool    `json:"read_only,omitempty"`
	AllDirs          *bool    `json:"all_dirs,omitempty"`
	SecurityFlavors  []string `json:"security_flavors,omitempty"`
	MapRoot          *MapRoot `json:"map_root,omitempty"`
}

// UpdateNfsExportRequest uses non-omitempty client lists only through
// pointers so that an emptied list is still sent.
type UpdateNfsExportRequest struct {
	Paths            []string  `json:"paths,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Clients          *[]string `json:"clients,omitempty"`
	ReadOnlyClients  *[]string `json:"read_only_clients,omitempty"`
	ReadWriteClients *[]string `json:"read_write_clients,omitempty"`
	RootClients      *[]string `json:"root_clients,omitempty"`
	ReadOnly         *bool     `json:"read_only,omitempty"`
	AllDirs          *bool     `json:"all_dirs,omitempty"`
	SecurityFlavors  []string  `json:"security_flavors,omitempty"`
	MapRoot          *MapRoot  `json:"map_root,omitempty"`
}

type NfsExportSpec struct {
	Paths            []string
	Description      *string
	Clients          []string
	ReadOnlyClients  []string
	ReadWriteClients []string
	RootClients      []string
	ReadOnly         *bool
	AllDirs          *bool
	SecurityFlavors  []string
	MapRootEnabled   *bool
	MapRootUser      *string
}
