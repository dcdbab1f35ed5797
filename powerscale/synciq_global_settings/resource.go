package synciqglobalsettings

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const settingsID = "synciq_global_settings"

var (
	_ resource.Resource                = &syncSettingsResource{}
	_ resource.ResourceWithConfigure   = &syncSettingsResource{}
	_ resource.ResourceWithImportState = &syncSettingsResource{}
)

type syncSettingsResource struct {
	client *common.Client
}

func NewSyncGlobalSettingsResource() resource.Resource {
	return &syncSettingsResource{}
}

func (r *syncSettingsResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

func (r *syncSettingsResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_synciq_global_settings"
}

func (r *syncSettingsResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:      true,
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
			},
			"service": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["service"],
				Validators:  []validator.String{stringvalidator.OneOf("on", "off", "paused")},
			},
			"encryption_required": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["encryption_required"],
			},
			"report_max_age": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["report_max_age"],
			},
			"report_max_count": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["report_max_count"],
			},
			"force_interface": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["force_interface"],
			},
		},
		Description: resourceDescriptions["resource"],
	}
}

func buildSyncSettingsUpdate(current SyncSettingsDto, plan syncSettingsModel) (UpdateSyncSettingsRequest, bool) {
	update := UpdateSyncSettingsRequest{
		Service:            util.StringChanged(plan.Service, current.Service),
		EncryptionRequired: util.BoolChanged(plan.EncryptionRequired, current.EncryptionRequired),
		ReportMaxAge:       util.Int64Changed(plan.ReportMaxAge, current.ReportMaxAge),
		ReportMaxCount:     util.Int64Changed(plan.ReportMaxCount, current.ReportMaxCount),
		ForceInterface:     util.BoolChanged(plan.ForceInterface, current.ForceInterface),
	}

	return update, update != UpdateSyncSettingsRequest{}
}

func (r *syncSettingsResource) getSettings(ctx context.Context) (*SyncSettingsDto, error) {
	resp := &GetSyncSettingsResponse{}
	if _, err := r.client.GetApiClient().Get(ctx, client.ApiPath.SyncSettings, resp, nil); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

func (r *syncSettingsResource) apply(ctx context.Context, plan syncSettingsModel) (*syncSettingsModel, error) {
	current, err := r.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	updateOpts, changed := buildSyncSettingsUpdate(*current, plan)
	if changed {
		tflog.Debug(ctx, "powerscale_synciq_global_settings update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := r.client.GetApiClient().Put(ctx, client.ApiPath.SyncSettings, updateOpts, nil, nil); err != nil {
			return nil, err
		}

		if current, err = r.getSettings(ctx); err != nil {
			return nil, err
		}
	}

	state := newSyncSettingsModel(*current)
	return &state, nil
}

func (r *syncSettingsResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Debug(ctx, "syncSettingsResource.Create is running")
	var plan syncSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating SyncIQ global settings",
			fmt.Sprintf("Could not update SyncIQ global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *syncSettingsResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Debug(ctx, "syncSettingsResource.Read is running")

	settings, err := r.getSettings(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read SyncIQ Global Settings",
			fmt.Sprintf("An error occurred while reading SyncIQ global settings: %s", client.DetermineError(err)),
		)
		return
	}

	state := newSyncSettingsModel(*settings)

	diags := resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}

func (r *syncSettingsResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Debug(ctx, "syncSettingsResource.Update is running")
	var plan syncSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating SyncIQ global settings",
			fmt.Sprintf("Could not update SyncIQ global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *syncSettingsResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Debug(ctx, "syncSettingsResource.Delete is running, settings are left unchanged on the cluster")
}

func (r *syncSettingsResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}
