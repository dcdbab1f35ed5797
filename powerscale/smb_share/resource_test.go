package smbshare

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

func everyoneRead() SharePermission {
	return SharePermission{
		Permission:     "read",
		PermissionType: "allow",
		Trustee:        client.Persona{ID: "SID:S-1-1-0", Name: "Everyone", Type: "wellknown"},
	}
}

func adminsFull() SharePermission {
	return SharePermission{
		Permission:     "full",
		PermissionType: "allow",
		Trustee:        client.Persona{ID: "GID:2000", Name: "admins", Type: "group"},
	}
}

func share1() SmbShareDto {
	return SmbShareDto{
		ID:                  "share1",
		Name:                "share1",
		Path:                "/ifs/data/share1",
		Zone:                "System",
		Browsable:           true,
		CaTimeout:           120,
		DirectoryCreateMask: 0700,
		FileCreateMask:      0700,
		Permissions:         []SharePermission{everyoneRead(), adminsFull()},
	}
}

func TestBuildSmbShareUpdate(t *testing.T) {
	everyone := everyoneRead()
	everyone.Trustee = client.Persona{Name: "everyone", Type: "wellknown"}

	_, changed := buildSmbShareUpdate(share1(), SmbShareSpec{
		Name:        "share1",
		Path:        "/ifs/data/share1",
		Browsable:   ptr.To(true),
		Permissions: []SharePermission{adminsFull(), everyone},
	})
	assert.False(t, changed, "reordered ACEs with different trustee case are not a change")

	update, changed := buildSmbShareUpdate(share1(), SmbShareSpec{
		Name:        "share1",
		Path:        "/ifs/data/share1",
		Permissions: []SharePermission{adminsFull()},
		CaTimeout:   ptr.To(60),
	})
	assert.True(t, changed)
	require.NotNil(t, update.Permissions)
	assert.Len(t, *update.Permissions, 1)
	assert.Equal(t, ptr.To(60), update.CaTimeout)
	assert.Nil(t, update.Name)
	assert.Nil(t, update.Path)

	update, changed = buildSmbShareUpdate(share1(), SmbShareSpec{Name: "renamed", Path: "/ifs/data/share1"})
	assert.True(t, changed)
	assert.Equal(t, ptr.To("renamed"), update.Name)
}

func TestResourceSmbShareCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SmbShares, http.StatusCreated, map[string]any{"id": "share1"})
	srv.JSON(http.MethodGet, client.ApiPath.SmbShareWithId("share1"), http.StatusOK, GetSmbShareResponse{Shares: []SmbShareDto{share1()}})

	d := schema.TestResourceDataRaw(t, ResourceSmbShare().Schema, map[string]interface{}{
		"name":        "share1",
		"path":        "/ifs/data/share1",
		"create_path": true,
		"permissions": []interface{}{
			map[string]interface{}{"trustee_name": "Everyone", "trustee_type": "wellknown", "permission": "read", "permission_type": "allow"},
		},
	})

	diags := resourceSmbShareCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "share1", d.Id())
	assert.Equal(t, 2, d.Get("permissions").(*schema.Set).Len())

	posts := srv.Requests(http.MethodPost, client.ApiPath.SmbShares)
	require.Len(t, posts, 1)
	assert.Equal(t, "System", posts[0].Query.Get("zone"))
	assert.JSONEq(t, `{
		"name": "share1",
		"path": "/ifs/data/share1",
		"create_path": true,
		"permissions": [{"permission": "read", "permission_type": "allow", "trustee": {"name": "Everyone", "type": "wellknown"}}]
	}`, string(posts[0].Body))
}

func TestResourceSmbShareRename(t *testing.T) {
	srv := fakeonefs.New(t)
	renamed := share1()
	renamed.Name = "share2"
	srv.JSON(http.MethodGet, client.ApiPath.SmbShareWithId("share1"), http.StatusOK, GetSmbShareResponse{Shares: []SmbShareDto{share1()}})
	srv.JSON(http.MethodGet, client.ApiPath.SmbShareWithId("share2"), http.StatusOK, GetSmbShareResponse{Shares: []SmbShareDto{renamed}})
	srv.Status(http.MethodPut, client.ApiPath.SmbShareWithId("share1"), http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceSmbShare().Schema, map[string]interface{}{
		"name": "share2",
		"path": "/ifs/data/share1",
	})
	d.SetId("share1")

	diags := resourceSmbShareUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "share2", d.Id())

	puts := srv.Requests(http.MethodPut, client.ApiPath.SmbShareWithId("share1"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"name":"share2"}`, string(puts[0].Body))
}

func TestResourceSmbShareUpdateNoChange(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SmbShareWithId("share1"), http.StatusOK, GetSmbShareResponse{Shares: []SmbShareDto{share1()}})

	d := schema.TestResourceDataRaw(t, ResourceSmbShare().Schema, map[string]interface{}{
		"name":       "share1",
		"path":       "/ifs/data/share1",
		"browsable":  true,
		"ca_timeout": 120,
		"permissions": []interface{}{
			map[string]interface{}{"trustee_name": "admins", "trustee_type": "group", "permission": "full", "permission_type": "allow"},
			map[string]interface{}{"trustee_name": "Everyone", "trustee_type": "wellknown", "permission": "read", "permission_type": "allow"},
		},
	})
	d.SetId("share1")

	diags := resourceSmbShareUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, srv.Writes())
}

func TestResourceSmbShareImport(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceSmbShare().Schema, map[string]interface{}{})
	d.SetId("zone1:share1")

	res, err := resourceSmbShareImport(context.Background(), d, nil)
	require.NoError(t, err)
	assert.Equal(t, "share1", res[0].Id())
	assert.Equal(t, "zone1", res[0].Get("zone"))
}
