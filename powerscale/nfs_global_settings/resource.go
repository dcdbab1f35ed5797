package nfsglobalsettings

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

const settingsID = "nfs_global_settings"

var (
	_ resource.Resource                = &nfsGlobalSettingsResource{}
	_ resource.ResourceWithConfigure   = &nfsGlobalSettingsResource{}
	_ resource.ResourceWithImportState = &nfsGlobalSettingsResource{}
)

type nfsGlobalSettingsResource struct {
	client *common.Client
}

func NewNfsGlobalSettingsResource() resource.Resource {
	return &nfsGlobalSettingsResource{}
}

func (r *nfsGlobalSettingsResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

func (r *nfsGlobalSettingsResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_nfs_global_settings"
}

func (r *nfsGlobalSettingsResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
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
			"nfsv3_enabled": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["nfsv3_enabled"],
			},
			"nfsv4_enabled": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["nfsv4_enabled"],
			},
			"rpc_maxthreads": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["rpc_maxthreads"],
			},
			"rpc_minthreads": schema.Int64Attribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["rpc_minthreads"],
			},
			"nfs_rdma_enabled": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Description: resourceDescriptions["nfs_rdma_enabled"],
			},
		},
		Description: resourceDescriptions["resource"],
	}
}

func buildNfsGlobalSettingsUpdate(current NfsGlobalSettingsDto, plan nfsGlobalSettingsModel) (UpdateNfsGlobalSettingsRequest, bool) {
	update := UpdateNfsGlobalSettingsRequest{
		Service:        util.BoolChanged(plan.Service, current.Service),
		Nfsv3Enabled:   util.BoolChanged(plan.Nfsv3Enabled, current.Nfsv3Enabled),
		Nfsv4Enabled:   util.BoolChanged(plan.Nfsv4Enabled, current.Nfsv4Enabled),
		RpcMaxthreads:  util.Int64Changed(plan.RpcMaxthreads, current.RpcMaxthreads),
		RpcMinthreads:  util.Int64Changed(plan.RpcMinthreads, current.RpcMinthreads),
		NfsRdmaEnabled: util.BoolChanged(plan.NfsRdmaEnabled, current.NfsRdmaEnabled),
	}

	return update, update != UpdateNfsGlobalSettingsRequest{}
}

func (r *nfsGlobalSettingsResource) getSettings(ctx context.Context) (*NfsGlobalSettingsDto, error) {
	resp := &GetNfsGlobalSettingsResponse{}
	if _, err := r.client.GetApiClient().Get(ctx, client.ApiPath.NfsGlobalSettings, resp, nil); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

// apply pushes the configured attributes and returns the resulting settings.
func (r *nfsGlobalSettingsResource) apply(ctx context.Context, plan nfsGlobalSettingsModel) (*nfsGlobalSettingsModel, error) {
	current, err := r.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	updateOpts, changed := buildNfsGlobalSettingsUpdate(*current, plan)
	if changed {
		tflog.Debug(ctx, "powerscale_nfs_global_settings update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := r.client.GetApiClient().Put(ctx, client.ApiPath.NfsGlobalSettings, updateOpts, nil, nil); err != nil {
			return nil, err
		}

		if current, err = r.getSettings(ctx); err != nil {
			return nil, err
		}
	}

	state := newNfsGlobalSettingsModel(*current)
	return &state, nil
}

func (r *nfsGlobalSettingsResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Debug(ctx, "nfsGlobalSettingsResource.Create is running")
	var plan nfsGlobalSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating NFS global settings",
			fmt.Sprintf("Could not update NFS global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *nfsGlobalSettingsResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Debug(ctx, "nfsGlobalSettingsResource.Read is running")

	settings, err := r.getSettings(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read NFS Global Settings",
			fmt.Sprintf("An error occurred while reading NFS global settings: %s", client.DetermineError(err)),
		)
		return
	}

	state := newNfsGlobalSettingsModel(*settings)

	diags := resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}

func (r *nfsGlobalSettingsResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Debug(ctx, "nfsGlobalSettingsResource.Update is running")
	var plan nfsGlobalSettingsModel

	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	state, err := r.apply(ctx, plan)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error updating NFS global settings",
			fmt.Sprintf("Could not update NFS global settings: %s", client.DetermineError(err)),
		)
		return
	}

	diags = resp.State.Set(ctx, state)
	resp.Diagnostics.Append(diags...)
}

func (r *nfsGlobalSettingsResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Debug(ctx, "nfsGlobalSettingsResource.Delete is running, settings are left unchanged on the cluster")
}

func (r *nfsGlobalSettingsResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}
