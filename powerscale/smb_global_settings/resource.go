package smbglobalsettings

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const settingsID = "smb_global_settings"

var (
	_ resource.Resource                = &smbGlobalSettingsResource{}
	_ resource.ResourceWithConfigure   = &smbGlobalSettingsResource{}
	_ resource.ResourceWithImportState = &smbGlobalSettingsResource{}
)

type smbGlobalSettingsResource struct {
	client *common.Client
}

func NewSmbGlobalSettingsResource() resource.Resource {
	return &smbGlobalSettingsResource{}
}

func (r *smbGlobalSettingsResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

func (r *smbGlobalSettingsResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_smb_global_settings"
}

func (r *smbGlobalSettingsResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:      true,
				PlanModifiers: []planmodifier.String{stringplanmodifier.UseStateForUnknown()},
			},
			"service": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["service"],
			},
			"access_based_share_enum": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["access_based_share_enum"],
			},
			"dot_snap_accessible_root": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["dot_snap_accessible_root"],
			},
			"support_smb2": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["support_smb2"],
			},
			"support_smb3_encryption": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["support_smb3_encryption"],
			},
			"server_string": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["server_string"],
			},
		},
		Description: resourceDescriptions["resource"],
	}
}

func buildSmbGlobalSettingsUpdate(current SmbGlobalSettingsDto, plan smbGlobalSettingsModel) (UpdateSmbGlobalSettingsRequest, bool) {
	update := UpdateSmbGlobalSettingsRequest{
		Service:               util.BoolChanged(plan.Service, current.Service),
		AccessBasedShareEnum:  util.BoolChanged(plan.AccessBasedShareEnum, current.AccessBasedShareEnum),
		DotSnapAccessibleRoot: util.BoolChanged(plan.DotSnapAccessibleRoot, current.DotSnapAccessibleRoot),
		SupportSmb2:           util.BoolChanged(plan.SupportSmb2, current.SupportSmb2),
		SupportSmb3Encryption: util.BoolChanged(plan.SupportSmb3Encryption, current.SupportSmb3Encryption),
		ServerString:          util.StringChanged(plan.ServerString, current.ServerString),
	}

	return update, update != UpdateSmbGlobalSettingsRequest{}
}

func (r *smbGlobalSettingsResource) getSettings(ctx context.Context) (*SmbGlobalSettingsDto, error) {
	resp := &GetSmbGlobalSettingsResponse{}
	if _, err := r.client.GetApiClient().Get(ctx, client.ApiPath.SmbGlobalSettings, resp, nil); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

func (r *smbGlobalSettingsResource) apply(ctx context.Context, plan smbGlobalSettingsModel) (*smbGlobalSettingsModel, error) {
	current, err := r.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	updateOpts, changed := buildSmbGlobalSettingsUpdate(*current, plan)
	if changed {
		tflog.Debug(ctx, "powerscale_smb_global_settings update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := r.client.GetApiClient().Put(ctx, client.ApiPath.SmbGlobalSettings, updateOpts, nil, nil); err != nil {
			return nil, err
		}

		if current, err = r.getSettings(ctx); err != nil {
			return nil, err
		}
	}

	state := newSmbGlobalSettingsModel(*current)
	return &state, nil
}

func (r *smbGlobalSettingsResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Debug(ctx, "smbGlobalSettingsResource.Create is running")
	var plan smbGlobalSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating SMB global settings",
			fmt.Sprintf("Could not update SMB global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *smbGlobalSettingsResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Debug(ctx, "smbGlobalSettingsResource.Read is running")

	settings, err := r.getSettings(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read SMB Global Settings",
			fmt.Sprintf("An error occurred while reading SMB global settings: %s", client.DetermineError(err)),
		)
		return
	}

	state := newSmbGlobalSettingsModel(*settings)

	diags := resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}

func (r *smbGlobalSettingsResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Debug(ctx, "smbGlobalSettingsResource.Update is running")
	var plan smbGlobalSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating SMB global settings",
			fmt.Sprintf("Could not update SMB global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *smbGlobalSettingsResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Debug(ctx, "smbGlobalSettingsResource.Delete is running, settings are left unchanged on the cluster")
}

func (r *smbGlobalSettingsResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}
