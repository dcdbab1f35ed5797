package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profiles = `
clusters:
  - clusterName: "primary"
    endpoint: "10.0.0.10"
    username: "root"
    password: "secret"
    skipCertificateValidation: true
    isDefault: true
  - clusterName: "dr"
    endpoint: "https://dr.example.com"
    endpointPort: "443"
    username: "admin"
    password: "drsecret"
    authType: "basic"
`

func TestParseClusterProfile(t *testing.T) {
	p, err := ParseClusterProfile([]byte(profiles), "")
	require.NoError(t, err)
	assert.Equal(t, "primary", p.ClusterName)
	assert.True(t, p.Insecure)
	assert.Equal(t, "https://10.0.0.10:8080", p.EndpointURL())

	p, err = ParseClusterProfile([]byte(profiles), "dr")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, "basic", p.AuthType)
	assert.Equal(t, "https://dr.example.com:443", p.EndpointURL())

	_, err = ParseClusterProfile([]byte(profiles), "missing")
	assert.EqualError(t, err, `cluster "missing" not found in cluster profile file`)
}

func TestParseClusterProfileDefaults(t *testing.T) {
	single := `
clusters:
  - clusterName: "only"
    endpoint: "only.example.com"
`
	p, err := ParseClusterProfile([]byte(single), "")
	require.NoError(t, err)
	assert.Equal(t, "only", p.ClusterName)

	twoDefaults := `
clusters:
  - clusterName: "a"
    isDefault: true
  - clusterName: "b"
    isDefault: true
`
	_, err = ParseClusterProfile([]byte(twoDefaults), "")
	assert.Error(t, err)

	noDefault := `
clusters:
  - clusterName: "a"
  - clusterName: "b"
`
	_, err = ParseClusterProfile([]byte(noDefault), "")
	assert.Error(t, err)

	_, err = ParseClusterProfile([]byte("clusters: []"), "")
	assert.Error(t, err)

	_, err = ParseClusterProfile([]byte("clusters: ["), "")
	assert.Error(t, err)
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "https://cluster.example.com:8080", NormalizeEndpoint("cluster.example.com", ""))
	assert.Equal(t, "https://cluster.example.com:9443", NormalizeEndpoint("cluster.example.com", "9443"))
	assert.Equal(t, "https://10.0.0.1:8443", NormalizeEndpoint("https://10.0.0.1:8443/", ""))
	assert.Equal(t, "http://127.0.0.1:34567", NormalizeEndpoint("http://127.0.0.1:34567", ""))
	assert.Equal(t, "", NormalizeEndpoint("  ", ""))
}

func TestApplyProfilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profiles), 0o600))

	insecure := false
	c := &Config{
		ConfigFile: path,
		Cluster:    "primary",
		Username:   "override",
		Insecure:   &insecure,
	}

	require.NoError(t, c.ApplyProfile())
	assert.Equal(t, "https://10.0.0.10:8080", c.Endpoint)
	assert.Equal(t, "override", c.Username)
	assert.Equal(t, "secret", c.Password)
	assert.False(t, *c.Insecure)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := &Config{}
	assert.ErrorIs(t, c.Validate(), ErrMissingEndpoint)

	c.Endpoint = "https://cluster:8080"
	assert.ErrorIs(t, c.Validate(), ErrMissingUsername)

	c.Username = "admin"
	assert.ErrorIs(t, c.Validate(), ErrMissingPassword)

	c.Password = "password"
	c.AuthType = "kerberos"
	assert.Error(t, c.Validate())

	c.AuthType = "basic"
	assert.NoError(t, c.Validate())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv(EnvInsecure, "true")
	t.Setenv(EnvTimeout, "30")

	require.NotNil(t, EnvBool(EnvInsecure))
	assert.True(t, *EnvBool(EnvInsecure))
	assert.Equal(t, 30, EnvInt(EnvTimeout))

	t.Setenv(EnvInsecure, "maybe")
	assert.Nil(t, EnvBool(EnvInsecure))
	assert.Nil(t, EnvBool("POWERSCALE_UNSET_FOR_TEST"))
	assert.Equal(t, 0, EnvInt("POWERSCALE_UNSET_FOR_TEST"))
}
