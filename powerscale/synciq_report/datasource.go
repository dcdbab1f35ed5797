package synciqreport

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/helper/client"
)

var (
	_ datasource.DataSource              = &syncReportsDataSource{}
	_ datasource.DataSourceWithConfigure = &syncReportsDataSource{}
)

// syncReportsDataSource serves both the source side and the target side
// report listings; they share a payload and differ only in path.
type syncReportsDataSource struct {
	client   *common.Client
	typeName string
	path     string
	desc     string
}

func NewSyncReportsDataSource() datasource.DataSource {
	return &syncReportsDataSource{
		typeName: "_synciq_reports",
		path:     client.ApiPath.SyncReports,
		desc:     datasourceDescriptions["source_datasource"],
	}
}

func NewSyncTargetReportsDataSource() datasource.DataSource {
	return &syncReportsDataSource{
		typeName: "_synciq_target_reports",
		path:     client.ApiPath.SyncTargetReports,
		desc:     datasourceDescriptions["target_datasource"],
	}
}

func (d *syncReportsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *syncReportsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + d.typeName
}

func (d *syncReportsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed: true,
			},
			"policy_name": schema.StringAttribute{
				Optional:    true,
				Description: datasourceDescriptions["policy_name"],
			},
			"newer_than": schema.Int64Attribute{
				Optional:    true,
				Description: datasourceDescriptions["newer_than"],
			},
			"reports": schema.ListNestedAttribute{
				Computed:    true,
				Description: datasourceDescriptions["reports"],
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.StringAttribute{
							Computed:    true,
							Description: datasourceDescriptions["report_id"],
						},
						"policy_name": schema.StringAttribute{
							Computed:    true,
							Description: datasourceDescriptions["policy_name"],
						},
						"state": schema.StringAttribute{
							Computed:    true,
							Description: datasourceDescriptions["state"],
						},
						"start_time": schema.Int64Attribute{
							Computed:    true,
							Description: datasourceDescriptions["start_time"],
						},
						"end_time": schema.Int64Attribute{
							Computed:    true,
							Description: datasourceDescriptions["end_time"],
						},
						"duration": schema.Int64Attribute{
							Computed:    true,
							Description: datasourceDescriptions["duration"],
						},
						"errors": schema.ListAttribute{
							Computed:    true,
							ElementType: types.StringType,
							Description: datasourceDescriptions["errors"],
						},
						"total_files": schema.Int64Attribute{
							Computed:    true,
							Description: datasourceDescriptions["total_files"],
						},
						"bytes_transferred": schema.Int64Attribute{
							Computed:    true,
							Description: datasourceDescriptions["bytes_transferred"],
						},
					},
				},
			},
		},
		Description: d.desc,
	}
}

// listReports follows the resume token until the cluster returns the last
// page. A resumed request must carry the token alone.
func listReports(ctx context.Context, c *client.Client, path string, query SyncReportQuery) ([]SyncReportDto, error) {
	var reports []SyncReportDto

	for {
		resp := &ListSyncReportsResponse{}
		if _, err := c.Get(ctx, client.ApiPath.ListWithQuery(path, query), resp, nil); err != nil {
			return nil, err
		}

		reports = append(reports, resp.Reports...)

		if resp.Resume == "" {
			return reports, nil
		}

		query = SyncReportQuery{Resume: resp.Resume}
	}
}

func (d *syncReportsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	tflog.Debug(ctx, "syncReportsDataSource.Read is running", map[string]interface{}{"path": d.path})
	var config syncReportsDatasourceConfigModel

	diags := req.Config.Get(ctx, &config)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	query := SyncReportQuery{
		PolicyName: config.PolicyName.ValueString(),
		NewerThan:  config.NewerThan.ValueInt64(),
	}

	reports, err := listReports(ctx, d.client.GetApiClient(), d.path, query)
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to Read SyncIQ Reports",
			fmt.Sprintf("An error occurred while listing SyncIQ reports: %s", client.DetermineError(err)),
		)
		return
	}

	state := syncReportsDatasourceConfigModel{
		Id:         types.StringValue(d.typeName[1:] + "/" + query.PolicyName),
		PolicyName: config.PolicyName,
		NewerThan:  config.NewerThan,
		Reports:    make([]syncReportModel, 0, len(reports)),
	}

	for _, report := range reports {
		state.Reports = append(state.Reports, newSyncReportModel(report))
	}

	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}
