package util

import (
	"fmt"
	"math"
	"strings"
)

var capUnits = map[string]int64{
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// CapUnits lists the capacity units accepted by size attributes.
func CapUnits() []string {
	return []string{"MB", "GB", "TB"}
}

// SizeToBytes converts a size expressed in unit to bytes.
func SizeToBytes(size float64, unit string) (int64, error) {
	factor, ok := capUnits[strings.ToUpper(unit)]
	if !ok {
		return 0, fmt.Errorf("unsupported capacity unit %q, expected one of %s", unit, strings.Join(CapUnits(), ", "))
	}

	if size < 0 {
		return 0, fmt.Errorf("size must not be negative, got %v", size)
	}

	return int64(math.Round(size * float64(factor))), nil
}

// BytesToSize is the inverse of SizeToBytes, rounded to two decimals.
func BytesToSize(bytes int64, unit string) (float64, error) {
	factor, ok := capUnits[strings.ToUpper(unit)]
	if !ok {
		return 0, fmt.Errorf("unsupported capacity unit %q, expected one of %s", unit, strings.Join(CapUnits(), ", "))
	}

	return math.Round(float64(bytes)/float64(factor)*100) / 100, nil
}

// ValidateCapSize is a schema.SchemaValidateFunc for sizes expressed in a
// capacity unit. Read reports two decimals, so finer sizes are rejected.
func ValidateCapSize(v interface{}, k string) ([]string, []error) {
	size, ok := v.(float64)
	if !ok {
		return nil, []error{fmt.Errorf("expected type of %q to be float", k)}
	}

	if size < 0 {
		return nil, []error{fmt.Errorf("%q must not be negative, got %v", k, size)}
	}

	if math.Abs(size*100-math.Round(size*100)) > 1e-6 {
		return nil, []error{fmt.Errorf("%q accepts at most two decimals, got %v", k, size)}
	}

	return nil, nil
}

// SameAtUnit reports whether bytes renders to want once rounded the way
// BytesToSize does.
func SameAtUnit(bytes, want int64, unit string) bool {
	size, err := BytesToSize(bytes, unit)
	if err != nil {
		return false
	}

	rounded, err := SizeToBytes(size, unit)
	if err != nil {
		return false
	}

	return rounded == want
}
