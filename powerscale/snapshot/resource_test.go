package snapshot

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

const expiry = int64(1893456000) // 2030-01-01T00:00:00Z

func snap12() SnapshotDto {
	return SnapshotDto{
		ID:      "12",
		Name:    "nightly",
		Path:    "/ifs/data/projects",
		Expires: ptr.To(expiry),
		Created: 1700000000,
		State:   "active",
	}
}

func TestExpires(t *testing.T) {
	v, err := parseExpires("2030-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, expiry, *v)
	assert.Equal(t, "2030-01-01T00:00:00Z", formatExpires(v))

	v, err = parseExpires("")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, "", formatExpires(nil))

	_, err = parseExpires("tomorrow")
	assert.Error(t, err)

	_, errs := validateExpires("2030-01-01", "expires")
	assert.Len(t, errs, 1)
}

func TestBuildSnapshotUpdate(t *testing.T) {
	_, changed := buildSnapshotUpdate(snap12(), SnapshotSpec{Name: "nightly", Expires: ptr.To(expiry)})
	assert.False(t, changed)

	update, changed := buildSnapshotUpdate(snap12(), SnapshotSpec{Name: "weekly", Alias: ptr.To("latest")})
	assert.True(t, changed)
	assert.Equal(t, ptr.To("weekly"), update.Name)
	assert.Equal(t, ptr.To("latest"), update.Alias)
	assert.Nil(t, update.Expires)
}

func TestResourceSnapshotCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.Snapshots, http.StatusCreated, map[string]any{"id": 12, "name": "nightly"})
	srv.JSON(http.MethodGet, client.ApiPath.SnapshotWithId("12"), http.StatusOK, GetSnapshotResponse{Snapshots: []SnapshotDto{snap12()}})

	d := schema.TestResourceDataRaw(t, ResourceSnapshot().Schema, map[string]interface{}{
		"path":    "/ifs/data/projects",
		"name":    "nightly",
		"expires": "2030-01-01T00:00:00Z",
	})

	diags := resourceSnapshotCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "12", d.Id())
	assert.Equal(t, "active", d.Get("state"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.Snapshots)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"path":"/ifs/data/projects","name":"nightly","expires":1893456000}`, string(posts[0].Body))
}

func TestResourceSnapshotUpdate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SnapshotWithId("12"), http.StatusOK, GetSnapshotResponse{Snapshots: []SnapshotDto{snap12()}})
	srv.Status(http.MethodPut, client.ApiPath.SnapshotWithId("12"), http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceSnapshot().Schema, map[string]interface{}{
		"path":    "/ifs/data/projects",
		"name":    "nightly",
		"expires": "2031-01-01T00:00:00Z",
	})
	d.SetId("12")

	diags := resourceSnapshotUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.SnapshotWithId("12"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"expires":1924992000}`, string(puts[0].Body))
}
