package alertchannel

type ChannelParameters struct {
	Address   []string `json:"address,omitempty"`
	SmtpHost  string   `json:"smtp_host,omitempty"`
	SmtpPort  int      `json:"smtp_port,omitempty"`
	SendAs    string   `json:"send_as,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Batch     string   `json:"batch,omitempty"`
	Host      string   `json:"host,omitempty"`
	Community string   `json:"community,omitempty"`
}

type AlertChannelDto struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Enabled       bool              `json:"enabled"`
	System        bool              `json:"system"`
	AllowedNodes  []int             `json:"allowed_nodes"`
	ExcludedNodes []int             `json:"excluded_nodes"`
	Parameters    ChannelParameters `json:"parameters"`
}

type GetAlertChannelResponse struct {
	Channels []AlertChannelDto `json:"channels"`
}

type CreateAlertChannelRequest struct {
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Enabled       *bool              `json:"enabled,omitempty"`
	AllowedNodes  []int              `json:"allowed_nodes,omitempty"`
	ExcludedNodes []int              `json:"excluded_nodes,omitempty"`
	Parameters    *ChannelParameters `json:"parameters,omitempty"`
}

type UpdateAlertChannelRequest struct {
	Enabled       *bool              `json:"enabled,omitempty"`
	AllowedNodes  *[]int             `json:"allowed_nodes,omitempty"`
	ExcludedNodes *[]int             `json:"excluded_nodes,omitempty"`
	Parameters    *ChannelParameters `json:"parameters,omitempty"`
}

type AlertChannelSpec struct {
	Enabled       *bool
	AllowedNodes  []int
	ExcludedNodes []int
	Parameters    *ChannelParameters
}
