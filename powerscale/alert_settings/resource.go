package alertsettings

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const settingsID = "alert_settings"

var (
	_ resource.Resource                = &alertSettingsResource{}
	_ resource.ResourceWithConfigure   = &alertSettingsResource{}
	_ resource.ResourceWithImportState = &alertSettingsResource{}
)

type alertSettingsResource struct {
	client *common.Client
}

func NewAlertSettingsResource() resource.Resource {
	return &alertSettingsResource{}
}

func (r *alertSettingsResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*common.Client)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *common.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	r.client = client
}

func (r *alertSettingsResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_alert_settings"
}

func (r *alertSettingsResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:      true,
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
			},
			"maintenance_start": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["maintenance_start"],
			},
			"maintenance_duration": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["maintenance_duration"],
			},
			"retention_days": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["retention_days"],
			},
			"storage_limit": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["storage_limit"],
			},
		},
		Description: resourceDescriptions["resource"],
	}
}

func known(v types.Int64) bool {
	return !v.IsNull() && !v.IsUnknown()
}

// buildAlertSettingsUpdate sends the maintenance window as a whole; an
// attribute of the window left out of the plan keeps its current value.
func buildAlertSettingsUpdate(current EventSettingsDto, plan alertSettingsModel) (UpdateEventSettingsRequest, bool) {
	update := UpdateEventSettingsRequest{
		RetentionPeriod: util.Int64Changed(plan.RetentionDays, current.RetentionPeriod),
		StorageLimit:    util.Int64Changed(plan.StorageLimit, current.StorageLimit),
	}

	window := current.Maintenance
	if known(plan.MaintenanceStart) {
		window.Start = plan.MaintenanceStart.ValueInt64()
	}
	if known(plan.MaintenanceDuration) {
		window.Duration = plan.MaintenanceDuration.ValueInt64()
	}
	if window != current.Maintenance {
		update.Maintenance = &window
	}

	return update, update != UpdateEventSettingsRequest{}
}

func (r *alertSettingsResource) getSettings(ctx context.Context) (*EventSettingsDto, error) {
	resp := &GetEventSettingsResponse{}
	if _, err := r.client.GetApiClient().Get(ctx, client.ApiPath.EventSettings, resp, nil); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

func (r *alertSettingsResource) apply(ctx context.Context, plan alertSettingsModel) (*alertSettingsModel, error) {
	current, err := r.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	updateOpts, changed := buildAlertSettingsUpdate(*current, plan)
	if changed {
		tflog.Debug(ctx, "powerscale_alert_settings update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := r.client.GetApiClient().Put(ctx, client.ApiPath.EventSettings, updateOpts, nil, nil); err != nil {
			return nil, err
		}

		if current, err = r.getSettings(ctx); err != nil {
			return nil, err
		}
	}

	state := newAlertSettingsModel(*current)
	return &state, nil
}

func (r *alertSettingsResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Debug(ctx, "alertSettingsResource.Create is running")
	var plan alertSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating alert settings",
			fmt.Sprintf("Could not update alert settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *alertSettingsResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Debug(ctx, "alertSettingsResource.Read is running")

	settings, err := r.getSettings(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read Alert Settings",
			fmt.Sprintf("An error occurred while reading alert settings: %s", client.DetermineError(err)),
		)
		return
	}

	state := newAlertSettingsModel(*settings)

	diags := resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}

func (r *alertSettingsResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Debug(ctx, "alertSettingsResource.Update is running")
	var plan alertSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating alert settings",
			fmt.Sprintf("Could not update alert settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *alertSettingsResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Debug(ctx, "alertSettingsResource.Delete is running")

	current, err := r.getSettings(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read Alert Settings",
			fmt.Sprintf("An error occurred while reading alert settings: %s", client.DetermineError(err)),
		)
		return
	}

	if current.Maintenance == (MaintenanceWindow{}) {
		return
	}

	updateOpts := UpdateEventSettingsRequest{ClearMaintenanceWindow: ptr.To(true)}
	if _, err := r.client.GetApiClient().Put(ctx, client.ApiPath.EventSettings, updateOpts, nil, nil); err != nil {
		resp.Diagnostics.AddError(
			"Error clearing maintenance window",
			fmt.Sprintf("Could not clear the alert maintenance window: %s", client.DetermineError(err)),
		)
	}
}

func (r *alertSettingsResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}
