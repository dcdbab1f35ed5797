package common

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-powerscale/powerscale/helper/client"
)

type AuthInfo struct {
	Username             string
	Password             string
	AuthType             string
	Insecure             bool
	Timeout              time.Duration
	MaxRequestsPerSecond int
	EnableLogging        bool
	HttpProxy            string
}

type Client struct {
	apiClient *client.Client
	cluster   *client.ClusterConfig
}

func (c *Client) GetApiClient() *client.Client {
	return c.apiClient
}

func (c *Client) GetClusterConfig() *client.ClusterConfig {
	return c.cluster
}

// WrapClient builds a Client around an already authenticated API client.
func WrapClient(apiClient *client.Client, cluster *client.ClusterConfig) *Client {
	return &Client{apiClient: apiClient, cluster: cluster}
}

func NewClient(ctx context.Context, endpoint string, authInfo *AuthInfo) (*Client, error) {
	parsedURL, err := url.Parse(endpoint)

	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %v", err)
	}

	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: expected https://<host>:<port>", endpoint)
	}

	apiClient, err := client.NewClient(ctx, &client.ClientConfig{
		Endpoint:             parsedURL.String(),
		Username:             authInfo.Username,
		Password:             authInfo.Password,
		AuthType:             authInfo.AuthType,
		Insecure:             authInfo.Insecure,
		Timeout:              authInfo.Timeout,
		MaxRequestsPerSecond: authInfo.MaxRequestsPerSecond,
		EnableLogging:        authInfo.EnableLogging,
		HttpProxy:            authInfo.HttpProxy,
	})

	if err != nil {
		return nil, fmt.Errorf("Failed to authenticate with PowerScale: %v", client.DetermineError(err))
	}

	cluster, err := apiClient.GetClusterConfig(ctx)

	if err != nil {
		return nil, fmt.Errorf("Failed to read the PowerScale cluster configuration: %v", client.DetermineError(err))
	}

	tflog.Debug(ctx, "Successfully authenticated with PowerScale.", map[string]interface{}{
		"cluster": cluster.Name,
		"release": cluster.OnefsVersion.Release,
	})

	return &Client{apiClient: apiClient, cluster: cluster}, nil
}
