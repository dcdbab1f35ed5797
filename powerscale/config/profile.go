package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPort = "8080"

// ClusterProfile is one entry of the cluster profile file.
type ClusterProfile struct {
	ClusterName  string `yaml:"clusterName"`
	Endpoint     string `yaml:"endpoint"`
	EndpointPort string `yaml:"endpointPort"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	AuthType     string `yaml:"authType"`
	Insecure     bool   `yaml:"skipCertificateValidation"`
	IsDefault    bool   `yaml:"isDefault"`
}

type profileFile struct {
	Clusters []ClusterProfile `yaml:"clusters"`
}

// LoadClusterProfile reads path and returns the profile called name, or the
// default profile when name is empty.
func LoadClusterProfile(path, name string) (*ClusterProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read cluster profile file %s: %w", path, err)
	}

	return ParseClusterProfile(raw, name)
}

func ParseClusterProfile(raw []byte, name string) (*ClusterProfile, error) {
	file := profileFile{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unable to parse cluster profile file: %w", err)
	}

	if len(file.Clusters) == 0 {
		return nil, fmt.Errorf("cluster profile file defines no clusters")
	}

	var found *ClusterProfile
	defaults := 0

	for i := range file.Clusters {
		p := &file.Clusters[i]
		if p.IsDefault {
			defaults++
		}
		if name != "" && p.ClusterName == name {
			found = p
		}
		if name == "" && p.IsDefault && found == nil {
			found = p
		}
	}

	if name == "" && defaults > 1 {
		return nil, fmt.Errorf("cluster profile file marks %d clusters as default, expected one", defaults)
	}

	if found == nil && name == "" && len(file.Clusters) == 1 {
		found = &file.Clusters[0]
	}

	if found == nil {
		if name != "" {
			return nil, fmt.Errorf("cluster %q not found in cluster profile file", name)
		}
		return nil, fmt.Errorf("no default cluster in cluster profile file; set the cluster attribute")
	}

	return found, nil
}

// EndpointURL renders the profile endpoint as https://host:port.
func (p *ClusterProfile) EndpointURL() string {
	return NormalizeEndpoint(p.Endpoint, p.EndpointPort)
}

// NormalizeEndpoint adds the https scheme and the default PAPI port when they
// are missing.
func NormalizeEndpoint(endpoint, port string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ""
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}

	if u.Port() == "" {
		if port == "" {
			port = defaultPort
		}
		u.Host = net.JoinHostPort(u.Hostname(), port)
	}

	return strings.TrimSuffix(u.String(), "/")
}
