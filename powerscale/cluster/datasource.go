package cluster

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
)

var (
	_ datasource.DataSource              = &clusterDataSource{}
	_ datasource.DataSourceWithConfigure = &clusterDataSource{}
)

func NewClusterDataSource() datasource.DataSource {
	return &clusterDataSource{}
}

type clusterDataSource struct {
	client *common.Client
}

func (d *clusterDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*common.Client)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *common.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	d.client = client
}

func (d *clusterDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_cluster"
}

func (d *clusterDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed: true,
			},
			"name": schema.StringAttribute{
				Computed:    true,
				Description: datasourceDescriptions["name"],
			},
			"description": schema.StringAttribute{
				Computed:    true,
				Description: datasourceDescriptions["description"],
			},
			"guid": schema.StringAttribute{
				Computed:    true,
				Description: datasourceDescriptions["guid"],
			},
			"onefs_release": schema.StringAttribute{
				Computed:    true,
				Description: datasourceDescriptions["onefs_release"],
			},
			"onefs_build": schema.StringAttribute{
				Computed:    true,
				Description: datasourceDescriptions["onefs_build"],
			},
			"node_count": schema.Int64Attribute{
				Computed:    true,
				Description: datasourceDescriptions["node_count"],
			},
			"local_lnn": schema.Int64Attribute{
				Computed:    true,
				Description: datasourceDescriptions["local_lnn"],
			},
		},
		Description: datasourceDescriptions["datasource"],
	}
}

func (d *clusterDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	tflog.Debug(ctx, "clusterDataSource.Read is running")

	cfg, err := d.client.GetApiClient().GetClusterConfig(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read Cluster",
			fmt.Sprintf("An error occurred while reading the cluster configuration: %s", client.DetermineError(err)),
		)
		return
	}

	state := newClusterDatasourceModel(*cfg)

	diags := resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}
