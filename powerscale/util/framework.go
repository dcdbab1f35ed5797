package util

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
	"k8s.io/utils/ptr"
)

// BoolChanged returns the planned value when it is known and differs from
// current. Null and unknown plans leave the attribute unmanaged.
func BoolChanged(plan types.Bool, current bool) *bool {
	if plan.IsNull() || plan.IsUnknown() || plan.ValueBool() == current {
		return nil
	}
	return ptr.To(plan.ValueBool())
}

func Int64Changed(plan types.Int64, current int64) *int64 {
	if plan.IsNull() || plan.IsUnknown() || plan.ValueInt64() == current {
		return nil
	}
	return ptr.To(plan.ValueInt64())
}

func StringChanged(plan types.String, current string) *string {
	if plan.IsNull() || plan.IsUnknown() || plan.ValueString() == current {
		return nil
	}
	return ptr.To(plan.ValueString())
}
