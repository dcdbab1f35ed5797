package fakeonefs

import (
	"context"
	"testing"

	datasourceschema "github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	resourceschema "github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
)

// ResourceState renders model into a state object for s. A nil model yields
// a null state, the way the framework hands a fresh resource to Create.
func ResourceState(t testing.TB, s resourceschema.Schema, model any) tfsdk.State {
	t.Helper()

	ctx := context.Background()
	state := tfsdk.State{
		Schema: s,
		Raw:    tftypes.NewValue(s.Type().TerraformType(ctx), nil),
	}

	if model == nil {
		return state
	}

	if diags := state.Set(ctx, model); diags.HasError() {
		t.Fatalf("unable to build resource state: %v", diags)
	}

	return state
}

// ResourcePlan renders model into a plan for s.
func ResourcePlan(t testing.TB, s resourceschema.Schema, model any) tfsdk.Plan {
	t.Helper()

	state := ResourceState(t, s, model)
	return tfsdk.Plan{Schema: s, Raw: state.Raw}
}

// DataSourceConfig renders model into a data source configuration for s.
func DataSourceConfig(t testing.TB, s datasourceschema.Schema, model any) tfsdk.Config {
	t.Helper()

	ctx := context.Background()
	state := tfsdk.State{
		Schema: s,
		Raw:    tftypes.NewValue(s.Type().TerraformType(ctx), nil),
	}

	if diags := state.Set(ctx, model); diags.HasError() {
		t.Fatalf("unable to build data source config: %v", diags)
	}

	return tfsdk.Config{Schema: s, Raw: state.Raw}
}

// DataSourceState returns the empty state a data source Read fills in.
func DataSourceState(s datasourceschema.Schema) tfsdk.State {
	return tfsdk.State{
		Schema: s,
		Raw:    tftypes.NewValue(s.Type().TerraformType(context.Background()), nil),
	}
}
