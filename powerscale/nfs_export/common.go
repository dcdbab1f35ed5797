package nfsexport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const userPersonaPrefix = "USER:"

var clientListKeys = []string{"clients", "read_only_clients", "read_write_clients", "root_clients"}

func getNfsExport(ctx context.Context, c *client.Client, id int, zone string) (*NfsExportDto, error) {
	path := client.ApiPath.ListWithQuery(client.ApiPath.NfsExportWithId(id), NfsExportQuery{Zone: zone})
	resp := &ListNfsExportsResponse{}
	if _, err := c.Get(ctx, path, resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Exports) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    path,
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("NFS export %d not found in zone %s", id, zone)),
		}
	}

	return &resp.Exports[0], nil
}

// findNfsExport looks an export up by one of its paths.
func findNfsExport(ctx context.Context, c *client.Client, path, zone string) (*NfsExportDto, error) {
	resp := &ListNfsExportsResponse{}
	url := client.ApiPath.ListWithQuery(client.ApiPath.NfsExports, NfsExportQuery{Zone: zone, Path: path})
	if _, err := c.Get(ctx, url, resp, nil); err != nil {
		return nil, err
	}

	for i := range resp.Exports {
		if util.StrSliceContains(resp.Exports[i].Paths, path) {
			return &resp.Exports[i], nil
		}
	}

	return nil, nil
}

func exportID(d *schema.ResourceData) (int, error) {
	id, err := strconv.Atoi(d.Id())
	if err != nil {
		return 0, fmt.Errorf("Unable to determine NFS export ID from raw ID: %s", d.Id())
	}
	return id, nil
}

func mapRootUserName(persona *client.Persona) string {
	if persona == nil {
		return ""
	}
	if persona.Name != "" {
		return persona.Name
	}
	return strings.TrimPrefix(persona.ID, userPersonaPrefix)
}

func expandNfsExportSpec(d *schema.ResourceData) NfsExportSpec {
	spec := NfsExportSpec{
		Paths: util.ExpandToStringSlice(d.Get("paths").([]interface{})),
	}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	lists := map[string]*[]string{
		"clients":            &spec.Clients,
		"read_only_clients":  &spec.ReadOnlyClients,
		"read_write_clients": &spec.ReadWriteClients,
		"root_clients":       &spec.RootClients,
	}
	for _, key := range clientListKeys {
		if _, ok := util.GetOkExists(d, key); ok {
			*lists[key] = util.ExpandStringSet(d.Get(key))
		}
	}

	if v, ok := d.GetOk("security_flavors"); ok {
		spec.SecurityFlavors = util.ExpandStringSet(v)
	}

	if v, ok := util.GetOkExists(d, "read_only"); ok {
		spec.ReadOnly = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "all_dirs"); ok {
		spec.AllDirs = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "map_root_enabled"); ok {
		spec.MapRootEnabled = ptr.To(v.(bool))
	}

	if v, ok := d.GetOk("map_root_user"); ok {
		spec.MapRootUser = ptr.To(v.(string))
	}

	return spec
}

func setsDiffer(desired, current []string) bool {
	return desired != nil && !util.StringSetsEqual(desired, current)
}

// buildNfsExportUpdate diffs desired against current. Client lists and
// security flavors are compared as sets; paths keep their order.
func buildNfsExportUpdate(current NfsExportDto, desired NfsExportSpec) (UpdateNfsExportRequest, bool) {
	update := UpdateNfsExportRequest{}
	changed := false

	if len(desired.Paths) > 0 && !util.StringSlicesEqual(desired.Paths, current.Paths) {
		update.Paths = desired.Paths
		changed = true
	}

	if desired.Description != nil && *desired.Description != current.Description {
		update.Description = desired.Description
		changed = true
	}

	if setsDiffer(desired.Clients, current.Clients) {
		update.Clients = ptr.To(desired.Clients)
		changed = true
	}

	if setsDiffer(desired.ReadOnlyClients, current.ReadOnlyClients) {
		update.ReadOnlyClients = ptr.To(desired.ReadOnlyClients)
		changed = true
	}

	if setsDiffer(desired.ReadWriteClients, current.ReadWriteClients) {
		update.ReadWriteClients = ptr.To(desired.ReadWriteClients)
		changed = true
	}

	if setsDiffer(desired.RootClients, current.RootClients) {
		update.RootClients = ptr.To(desired.RootClients)
		changed = true
	}

	if setsDiffer(desired.SecurityFlavors, current.SecurityFlavors) {
		update.SecurityFlavors = desired.SecurityFlavors
		changed = true
	}

	if desired.ReadOnly != nil && *desired.ReadOnly != current.ReadOnly {
		update.ReadOnly = desired.ReadOnly
		changed = true
	}

	if desired.AllDirs != nil && *desired.AllDirs != current.AllDirs {
		update.AllDirs = desired.AllDirs
		changed = true
	}

	mapRoot := MapRoot{}
	if desired.MapRootEnabled != nil && *desired.MapRootEnabled != ptr.Deref(current.MapRoot.Enabled, false) {
		mapRoot.Enabled = desired.MapRootEnabled
	}
	if desired.MapRootUser != nil && *desired.MapRootUser != mapRootUserName(current.MapRoot.User) {
		mapRoot.User = &client.Persona{ID: userPersonaPrefix + *desired.MapRootUser}
	}
	if mapRoot.Enabled != nil || mapRoot.User != nil {
		update.MapRoot = &mapRoot
		changed = true
	}

	return update, changed
}

func setNfsExportState(d *schema.ResourceData, export *NfsExportDto) {
	d.Set("paths", export.Paths)
	if export.Zone != "" {
		d.Set("zone", export.Zone)
	}
	d.Set("description", export.Description)
	d.Set("clients", export.Clients)
	d.Set("read_only_clients", export.ReadOnlyClients)
	d.Set("read_write_clients", export.ReadWriteClients)
	d.Set("root_clients", export.RootClients)
	d.Set("read_only", export.ReadOnly)
	d.Set("all_dirs", export.AllDirs)
	d.Set("security_flavors", export.SecurityFlavors)
	d.Set("map_root_enabled", ptr.Deref(export.MapRoot.Enabled, false))
	d.Set("map_root_user", mapRootUserName(export.MapRoot.User))
	d.Set("export_id", export.ID)
}
