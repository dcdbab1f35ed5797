package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listOpts struct {
	Zone     string   `q:"zone"`
	Path     string   `q:"path"`
	Limit    int      `q:"limit"`
	Enforced *bool    `q:"enforced"`
	Types    []string `q:"type" format:"comma-separated"`
	Ignored  string
}

func TestBuildQueryString(t *testing.T) {
	enforced := false

	u, err := BuildQueryString(listOpts{
		Zone:     "zone1",
		Path:     "/ifs/data/a b",
		Limit:    10,
		Enforced: &enforced,
		Types:    []string{"user", "group"},
		Ignored:  "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "enforced=false&limit=10&path=%2Fifs%2Fdata%2Fa+b&type=user%2Cgroup&zone=zone1", u.RawQuery)

	u, err = BuildQueryString(&listOpts{})
	require.NoError(t, err)
	assert.Empty(t, u.RawQuery)
}

func TestBuildQueryStringRequired(t *testing.T) {
	type opts struct {
		Zone string `q:"zone" required:"true"`
	}

	_, err := BuildQueryString(opts{})
	assert.Error(t, err)

	_, err = BuildQueryString("zone")
	assert.Error(t, err)
}

func TestListWithQuery(t *testing.T) {
	type opts struct {
		Zone string `q:"zone"`
	}

	assert.Equal(t, "/platform/7/protocols/smb/shares/data?zone=zone1",
		ApiPath.ListWithQuery(ApiPath.SmbShareWithId("data"), opts{Zone: "zone1"}))
	assert.Equal(t, "/platform/7/protocols/smb/shares", ApiPath.ListWithQuery(ApiPath.SmbShares, opts{}))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Export not found", ErrorMessage([]byte(`{"errors":[{"code":"AEC_NOT_FOUND","message":"Export not found"}]}`)))
	assert.Equal(t, "paths: Invalid path; Zone missing",
		ErrorMessage([]byte(`{"errors":[{"code":"AEC_BAD_REQUEST","field":"paths","message":"Invalid path"},{"code":"AEC_BAD_REQUEST","message":"Zone missing"}]}`)))
	assert.Equal(t, "Internal Server Error", ErrorMessage([]byte("Internal Server Error\n")))
	assert.Equal(t, "empty response body", ErrorMessage(nil))
}

func TestApiPathEscaping(t *testing.T) {
	assert.Equal(t, "/platform/3/network/groupnets/groupnet0/subnets/subnet0/pools/pool%201",
		ApiPath.NetworkPoolWithId("groupnet0", "subnet0", "pool 1"))
	assert.Equal(t, "/platform/4/protocols/nfs/exports/12", ApiPath.NfsExportWithId(12))
}
