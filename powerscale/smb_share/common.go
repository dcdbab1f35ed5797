package smbshare

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func sharePath(name, zone string) string {
	return client.ApiPath.ListWithQuery(client.ApiPath.SmbShareWithId(name), SmbShareQuery{Zone: zone})
}

func getSmbShare(ctx context.Context, c *client.Client, name, zone string) (*SmbShareDto, error) {
	resp := &GetSmbShareResponse{}
	if _, err := c.Get(ctx, sharePath(name, zone), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Shares) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    sharePath(name, zone),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("SMB share %s not found in zone %s", name, zone)),
		}
	}

	return &resp.Shares[0], nil
}

// permissionKey identifies an ACE by trustee, right and type. Trustee names
// are case-insensitive on OneFS.
func permissionKey(p SharePermission) string {
	return strings.ToLower(fmt.Sprintf("%s/%s/%s/%s", p.Trustee.Type, p.Trustee.Name, p.Permission, p.PermissionType))
}

func permissionKeys(perms []SharePermission) []string {
	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		keys = append(keys, permissionKey(p))
	}
	return keys
}

func expandPermissions(v interface{}) []SharePermission {
	set, ok := v.(*schema.Set)
	if !ok || set == nil {
		return []SharePermission{}
	}

	perms := make([]SharePermission, 0, set.Len())
	for _, raw := range set.List() {
		m := raw.(map[string]interface{})
		perms = append(perms, SharePermission{
			Permission:     m["permission"].(string),
			PermissionType: m["permission_type"].(string),
			Trustee: client.Persona{
				Name: m["trustee_name"].(string),
				Type: m["trustee_type"].(string),
			},
		})
	}

	sort.Slice(perms, func(i, j int) bool {
		return permissionKey(perms[i]) < permissionKey(perms[j])
	})

	return perms
}

func flattenPermissions(perms []SharePermission) []interface{} {
	res := make([]interface{}, 0, len(perms))
	for _, p := range perms {
		res = append(res, map[string]interface{}{
			"trustee_name":    p.Trustee.Name,
			"trustee_type":    p.Trustee.Type,
			"permission":      p.Permission,
			"permission_type": p.PermissionType,
		})
	}
	return res
}

func optionalInt(d *schema.ResourceData, key string) *int {
	if v, ok := util.GetOkExists(d, key); ok {
		return ptr.To(v.(int))
	}
	return nil
}

func optionalBool(d *schema.ResourceData, key string) *bool {
	if v, ok := util.GetOkExists(d, key); ok {
		return ptr.To(v.(bool))
	}
	return nil
}

func expandSmbShareSpec(d *schema.ResourceData) SmbShareSpec {
	spec := SmbShareSpec{
		Name:                   d.Get("name").(string),
		Path:                   d.Get("path").(string),
		Browsable:              optionalBool(d, "browsable"),
		AccessBasedEnumeration: optionalBool(d, "access_based_enumeration"),
		CaTimeout:              optionalInt(d, "ca_timeout"),
		DirectoryCreateMask:    optionalInt(d, "directory_create_mask"),
		FileCreateMask:         optionalInt(d, "file_create_mask"),
	}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	if _, ok := util.GetOkExists(d, "permissions"); ok {
		spec.Permissions = expandPermissions(d.Get("permissions"))
	}

	return spec
}

func intChanged(desired *int, current int) bool {
	return desired != nil && *desired != current
}

func boolChanged(desired *bool, current bool) bool {
	return desired != nil && *desired != current
}

// buildSmbShareUpdate diffs desired against current. Permission entries are
// compared as a set, so ACE order on the array is ignored.
func buildSmbShareUpdate(current SmbShareDto, desired SmbShareSpec) (UpdateSmbShareRequest, bool) {
	update := UpdateSmbShareRequest{}
	changed := false

	if desired.Name != "" && desired.Name != current.Name {
		update.Name = ptr.To(desired.Name)
		changed = true
	}

	if desired.Path != "" && desired.Path != current.Path {
		update.Path = ptr.To(desired.Path)
		changed = true
	}

	if desired.Description != nil && *desired.Description != current.Description {
		update.Description = desired.Description
		changed = true
	}

	if boolChanged(desired.Browsable, current.Browsable) {
		update.Browsable = desired.Browsable
		changed = true
	}

	if boolChanged(desired.AccessBasedEnumeration, current.AccessBasedEnumeration) {
		update.AccessBasedEnumeration = desired.AccessBasedEnumeration
		changed = true
	}

	if intChanged(desired.CaTimeout, current.CaTimeout) {
		update.CaTimeout = desired.CaTimeout
		changed = true
	}

	if intChanged(desired.DirectoryCreateMask, current.DirectoryCreateMask) {
		update.DirectoryCreateMask = desired.DirectoryCreateMask
		changed = true
	}

	if intChanged(desired.FileCreateMask, current.FileCreateMask) {
		update.FileCreateMask = desired.FileCreateMask
		changed = true
	}

	if desired.Permissions != nil && !util.StringSetsEqual(permissionKeys(desired.Permissions), permissionKeys(current.Permissions)) {
		update.Permissions = ptr.To(desired.Permissions)
		changed = true
	}

	return update, changed
}
