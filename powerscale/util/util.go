package util

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"terraform-provider-powerscale/powerscale/helper/client"
)

const (
	IfsRoot = "/ifs"

	DefaultZone = "System"
)

// CheckNotFound checks the error to see if it's a 404 (Not Found) and, if so,
// sets the resource ID to the empty string instead of throwing an error.
func CheckNotFound(d *schema.ResourceData, err error, msg string) error {
	if client.ResponseCodeIs(err, http.StatusNotFound) {
		d.SetId("")
		return nil
	}

	return fmt.Errorf("%s %s: %s", msg, d.Id(), client.DetermineError(err))
}

// IgnoreNotFound swallows 404 responses. Deleting something that is already
// gone is a success.
func IgnoreNotFound(err error) error {
	if client.ResponseCodeIs(err, http.StatusNotFound) {
		return nil
	}
	return err
}

// GetOkExists is a helper function that replaces the deprecated GetOkExists
// schema method. It returns the value of the key if it exists in the
// configuration, along with a boolean indicating if the key exists.
func GetOkExists(d *schema.ResourceData, key string) (interface{}, bool) {
	raw := d.GetRawConfig()
	if raw.IsNull() || !raw.IsKnown() || !raw.Type().IsObjectType() || !raw.Type().HasAttribute(key) {
		return d.GetOk(key)
	}

	v := raw.GetAttr(key)
	if v.IsNull() {
		return nil, false
	}
	return d.Get(key), true
}

func ExpandToStringSlice(v []interface{}) []string {
	s := make([]string, len(v))
	for i, val := range v {
		if strVal, ok := val.(string); ok {
			s[i] = strVal
		}
	}

	return s
}

// ExpandStringSet flattens a *schema.Set of strings into a sorted slice.
func ExpandStringSet(v interface{}) []string {
	set, ok := v.(*schema.Set)
	if !ok || set == nil {
		return []string{}
	}
	s := ExpandToStringSlice(set.List())
	sort.Strings(s)
	return s
}

func ExpandIntSet(v interface{}) []int {
	set, ok := v.(*schema.Set)
	if !ok || set == nil {
		return []int{}
	}
	s := make([]int, 0, set.Len())
	for _, raw := range set.List() {
		if i, ok := raw.(int); ok {
			s = append(s, i)
		}
	}
	sort.Ints(s)
	return s
}

// StrSliceContains checks if a given string is contained in a slice
func StrSliceContains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// StringSetDifference returns the members of a that are missing from b,
// in the order they appear in a.
func StringSetDifference(a, b []string) []string {
	res := []string{}
	for _, i := range a {
		if !StrSliceContains(b, i) && !StrSliceContains(res, i) {
			res = append(res, i)
		}
	}
	return res
}

// StringSetsEqual compares two slices as sets; order and duplicates are
// ignored.
func StringSetsEqual(a, b []string) bool {
	return len(StringSetDifference(a, b)) == 0 && len(StringSetDifference(b, a)) == 0
}

// IntSetsEqual is StringSetsEqual for integers.
func IntSetsEqual(a, b []int) bool {
	seen := map[int]bool{}
	for _, i := range a {
		seen[i] = true
	}
	other := map[int]bool{}
	for _, i := range b {
		if !seen[i] {
			return false
		}
		other[i] = true
	}
	return len(seen) == len(other)
}

// StringSlicesEqual compares two slices element by element.
func StringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseZonedID splits an import ID of the form <zone>:<id>. A bare ID is
// scoped to the System zone.
func ParseZonedID(id string) (string, string, error) {
	if id == "" {
		return "", "", fmt.Errorf("Unable to parse an empty import ID")
	}

	parts := strings.SplitN(id, ":", 2)
	if len(parts) == 1 {
		return DefaultZone, parts[0], nil
	}

	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("Unable to determine zone and ID from raw ID: %s", id)
	}

	return parts[0], parts[1], nil
}

// ParsePairedIDs is a helper function that parses a raw ID into separate
// IDs joined by sep. This is useful for resources that have a parent/child
// relationship.
func ParsePairedIDs(id, sep string, count int, res string) ([]string, error) {
	parts := strings.SplitN(id, sep, count)
	if len(parts) != count {
		return nil, fmt.Errorf("Unable to determine %s ID from raw ID: %s", res, id)
	}

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("Unable to determine %s ID from raw ID: %s", res, id)
		}
	}

	return parts, nil
}

// ValidateIfsPath is a schema.SchemaValidateFunc for absolute OneFS paths.
func ValidateIfsPath(v interface{}, k string) ([]string, []error) {
	s, ok := v.(string)
	if !ok {
		return nil, []error{fmt.Errorf("expected type of %q to be string", k)}
	}

	if s != IfsRoot && !strings.HasPrefix(s, IfsRoot+"/") {
		return nil, []error{fmt.Errorf("%q must be an absolute path under %s, got %q", k, IfsRoot, s)}
	}

	if strings.Contains(s, "//") || (len(s) > len(IfsRoot) && strings.HasSuffix(s, "/")) {
		return nil, []error{fmt.Errorf("%q must not contain empty segments or a trailing slash, got %q", k, s)}
	}

	return nil, nil
}
