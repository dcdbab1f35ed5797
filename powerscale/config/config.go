package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/keymutex"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
)

const (
	EnvEndpoint   = "POWERSCALE_ENDPOINT"
	EnvUsername   = "POWERSCALE_USERNAME"
	EnvPassword   = "POWERSCALE_PASSWORD"
	EnvInsecure   = "POWERSCALE_INSECURE"
	EnvAuthType   = "POWERSCALE_AUTH_TYPE"
	EnvTimeout    = "POWERSCALE_TIMEOUT"
	EnvConfigFile = "POWERSCALE_CONFIG_FILE"
	EnvCluster    = "POWERSCALE_CLUSTER"
	EnvHttpProxy  = "POWERSCALE_HTTP_PROXY"

	DefaultTimeout = 120
)

var (
	ErrMissingEndpoint = errors.New("missing PowerScale endpoint")
	ErrMissingUsername = errors.New("missing PowerScale username")
	ErrMissingPassword = errors.New("missing PowerScale password")
)

type Config struct {
	Endpoint             string
	Username             string
	Password             string
	AuthType             string
	Insecure             *bool
	Timeout              int
	MaxRequestsPerSecond int
	ConfigFile           string
	Cluster              string
	EnableLogging        bool
	HttpProxy            string

	// MutexKV serialises writes that touch the same parent object.
	MutexKV keymutex.KeyMutex

	*common.Client
}

// ApplyProfile fills every setting still empty from the cluster profile file.
func (c *Config) ApplyProfile() error {
	if c.ConfigFile == "" {
		return nil
	}

	profile, err := LoadClusterProfile(c.ConfigFile, c.Cluster)
	if err != nil {
		return err
	}

	if c.Endpoint == "" {
		c.Endpoint = profile.EndpointURL()
	}
	if c.Username == "" {
		c.Username = profile.Username
	}
	if c.Password == "" {
		c.Password = profile.Password
	}
	if c.AuthType == "" {
		c.AuthType = profile.AuthType
	}
	if c.Insecure == nil {
		c.Insecure = ptr.To(profile.Insecure)
	}

	return nil
}

// Validate reports the first required setting that is still empty.
func (c *Config) Validate() error {
	switch {
	case c.Endpoint == "":
		return ErrMissingEndpoint
	case c.Username == "":
		return ErrMissingUsername
	case c.Password == "":
		return ErrMissingPassword
	}

	if c.AuthType != "" && c.AuthType != client.AuthTypeSession && c.AuthType != client.AuthTypeBasic {
		return errors.New("auth_type must be one of session or basic, got " + c.AuthType)
	}

	return nil
}

func (c *Config) LoadAndValidate(ctx context.Context) error {
	if err := c.ApplyProfile(); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	apiClient, err := common.NewClient(ctx, NormalizeEndpoint(c.Endpoint, ""), &common.AuthInfo{
		Username:             c.Username,
		Password:             c.Password,
		AuthType:             c.AuthType,
		Insecure:             ptr.Deref(c.Insecure, false),
		Timeout:              time.Duration(timeout) * time.Second,
		MaxRequestsPerSecond: c.MaxRequestsPerSecond,
		EnableLogging:        c.EnableLogging,
		HttpProxy:            c.HttpProxy,
	})
	if err != nil {
		return err
	}

	c.Client = apiClient
	c.MutexKV = keymutex.NewHashed(0)

	return nil
}

// PowerScaleClient returns the authenticated platform API client.
func (c *Config) PowerScaleClient() *client.Client {
	return c.GetApiClient()
}

// NewForClient wraps an authenticated client. Used by tests and by the
// framework provider, which builds its client the same way.
func NewForClient(c *common.Client) *Config {
	return &Config{
		Client:  c,
		MutexKV: keymutex.NewHashed(0),
	}
}

// EnvBool parses a boolean environment variable, nil when unset or invalid.
func EnvBool(name string) *bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// EnvInt parses an integer environment variable, 0 when unset or invalid.
func EnvInt(name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(name)))
	if err != nil {
		return 0
	}
	return v
}
