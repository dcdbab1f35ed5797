package client

import "context"

type ClusterVersion struct {
	Build    string `json:"build"`
	Release  string `json:"release"`
	Revision string `json:"revision"`
	Type     string `json:"type"`
	Version  string `json:"version"`
}

type ClusterDevice struct {
	Devid int    `json:"devid"`
	Guid  string `json:"guid"`
	Lnn   int    `json:"lnn"`
}

type ClusterConfig struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Guid         string          `json:"guid"`
	LocalDevid   int             `json:"local_devid"`
	LocalLnn     int             `json:"local_lnn"`
	OnefsVersion ClusterVersion  `json:"onefs_version"`
	Devices      []ClusterDevice `json:"devices"`
	Encoding     string          `json:"encoding"`
}

// GetClusterConfig reads the cluster identity. It is the cheapest call that
// proves the endpoint and credentials are usable.
func (client *Client) GetClusterConfig(ctx context.Context) (*ClusterConfig, error) {
	resp := &ClusterConfig{}
	if _, err := client.Get(ctx, ApiPath.ClusterConfig, resp, nil); err != nil {
		return nil, err
	}
	return resp, nil
}
