package provider

import (
	"context"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/logging"

	alertsettings "terraform-provider-powerscale/powerscale/alert_settings"
	"terraform-provider-powerscale/powerscale/cluster"
	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	nfsglobalsettings "terraform-provider-powerscale/powerscale/nfs_global_settings"
	smbglobalsettings "terraform-provider-powerscale/powerscale/smb_global_settings"
	synciqglobalsettings "terraform-provider-powerscale/powerscale/synciq_global_settings"
	synciqreport "terraform-provider-powerscale/powerscale/synciq_report"
)

var (
	_ provider.Provider = &powerScaleProvider{}
)

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &powerScaleProvider{
			version: version,
		}
	}
}

type powerScaleProviderConfig struct {
	Endpoint             types.String `tfsdk:"endpoint"`
	Username             types.String `tfsdk:"username"`
	Password             types.String `tfsdk:"password"`
	Insecure             types.Bool   `tfsdk:"insecure"`
	AuthType             types.String `tfsdk:"auth_type"`
	Timeout              types.Int64  `tfsdk:"timeout"`
	MaxRequestsPerSecond types.Int64  `tfsdk:"max_requests_per_second"`
	ConfigFile           types.String `tfsdk:"config_file"`
	Cluster              types.String `tfsdk:"cluster"`
	HttpProxy            types.String `tfsdk:"http_proxy"`
	EnableLogging        types.Bool   `tfsdk:"enable_logging"`
}

type powerScaleProvider struct {
	version string
}

func (p *powerScaleProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data powerScaleProviderConfig

	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	if data.Endpoint.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("endpoint"),
			attrErrorSummaryMsg["unknown_endpoint"],
			attrErrorDetailMsg["unknown_endpoint"],
		)
	}

	if data.Username.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("username"),
			attrErrorSummaryMsg["unknown_username"],
			attrErrorDetailMsg["unknown_username"],
		)
	}

	if data.Password.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("password"),
			attrErrorSummaryMsg["unknown_password"],
			attrErrorDetailMsg["unknown_password"],
		)
	}

	if resp.Diagnostics.HasError() {
		return
	}

	cfg := config.Config{
		Endpoint:   os.Getenv(config.EnvEndpoint),
		Username:   os.Getenv(config.EnvUsername),
		Password:   os.Getenv(config.EnvPassword),
		AuthType:   os.Getenv(config.EnvAuthType),
		Insecure:   config.EnvBool(config.EnvInsecure),
		Timeout:    config.EnvInt(config.EnvTimeout),
		ConfigFile: os.Getenv(config.EnvConfigFile),
		Cluster:    os.Getenv(config.EnvCluster),
		HttpProxy:  os.Getenv(config.EnvHttpProxy),
	}

	if !data.Endpoint.IsNull() {
		cfg.Endpoint = data.Endpoint.ValueString()
	}

	if !data.Username.IsNull() {
		cfg.Username = data.Username.ValueString()
	}

	if !data.Password.IsNull() {
		cfg.Password = data.Password.ValueString()
	}

	if !data.AuthType.IsNull() && !data.AuthType.IsUnknown() {
		cfg.AuthType = data.AuthType.ValueString()
	}

	if !data.Insecure.IsNull() && !data.Insecure.IsUnknown() {
		insecure := data.Insecure.ValueBool()
		cfg.Insecure = &insecure
	}

	if !data.Timeout.IsNull() && !data.Timeout.IsUnknown() {
		cfg.Timeout = int(data.Timeout.ValueInt64())
	}

	if !data.MaxRequestsPerSecond.IsNull() && !data.MaxRequestsPerSecond.IsUnknown() {
		cfg.MaxRequestsPerSecond = int(data.MaxRequestsPerSecond.ValueInt64())
	}

	if !data.ConfigFile.IsNull() && !data.ConfigFile.IsUnknown() {
		cfg.ConfigFile = data.ConfigFile.ValueString()
	}

	if !data.Cluster.IsNull() && !data.Cluster.IsUnknown() {
		cfg.Cluster = data.Cluster.ValueString()
	}

	if !data.HttpProxy.IsNull() && !data.HttpProxy.IsUnknown() {
		cfg.HttpProxy = data.HttpProxy.ValueString()
	}

	cfg.EnableLogging = data.EnableLogging.ValueBool()
	if logLevel := logging.LogLevel(); logLevel == "DEBUG" || logLevel == "TRACE" {
		cfg.EnableLogging = true
	}

	// A cluster profile may still supply the credentials.
	if cfg.ConfigFile == "" {
		if cfg.Endpoint == "" {
			resp.Diagnostics.AddAttributeError(
				path.Root("endpoint"),
				attrErrorSummaryMsg["missing_endpoint"],
				attrErrorDetailMsg["missing_endpoint"],
			)
		}

		if cfg.Username == "" {
			resp.Diagnostics.AddAttributeError(
				path.Root("username"),
				attrErrorSummaryMsg["missing_username"],
				attrErrorDetailMsg["missing_username"],
			)
		}

		if cfg.Password == "" {
			resp.Diagnostics.AddAttributeError(
				path.Root("password"),
				attrErrorSummaryMsg["missing_password"],
				attrErrorDetailMsg["missing_password"],
			)
		}
	}

	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Debug(ctx, "Creating PowerScale client", map[string]interface{}{
		"endpoint":    cfg.Endpoint,
		"username":    cfg.Username,
		"auth_type":   cfg.AuthType,
		"config_file": cfg.ConfigFile,
		"cluster":     cfg.Cluster,
	})

	if err := cfg.LoadAndValidate(ctx); err != nil {
		resp.Diagnostics.AddError(
			"Unable to Create PowerScale API Client",
			"An unexpected error occurred when creating the PowerScale API client. "+
				"If the error is not clear, please contact the provider developers.\n\n"+
				"PowerScale Client Error: "+err.Error(),
		)
		return
	}

	resp.DataSourceData = cfg.Client
	resp.ResourceData = cfg.Client
}

func (p *powerScaleProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "powerscale"
	resp.Version = p.version
}

func (p *powerScaleProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		cluster.NewClusterDataSource,
		synciqreport.NewSyncReportsDataSource,
		synciqreport.NewSyncTargetReportsDataSource,
	}
}

func (p *powerScaleProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		nfsglobalsettings.NewNfsGlobalSettingsResource,
		smbglobalsettings.NewSmbGlobalSettingsResource,
		synciqglobalsettings.NewSyncGlobalSettingsResource,
		alertsettings.NewAlertSettingsResource,
	}
}

func (p *powerScaleProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"endpoint": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["endpoint"],
			},
			"username": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["username"],
			},
			"password": schema.StringAttribute{
				Optional:    true,
				Sensitive:   true,
				Description: descriptions["password"],
			},
			"insecure": schema.BoolAttribute{
				Optional:    true,
				Description: descriptions["insecure"],
			},
			"auth_type": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["auth_type"],
				Validators: []validator.String{
					stringvalidator.OneOf(client.AuthTypeSession, client.AuthTypeBasic),
				},
			},
			"timeout": schema.Int64Attribute{
				Optional:    true,
				Description: descriptions["timeout"],
			},
			"max_requests_per_second": schema.Int64Attribute{
				Optional:    true,
				Description: descriptions["max_requests_per_second"],
			},
			"config_file": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["config_file"],
			},
			"cluster": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["cluster"],
			},
			"http_proxy": schema.StringAttribute{
				Optional:    true,
				Description: descriptions["http_proxy"],
			},
			"enable_logging": schema.BoolAttribute{
				Optional:    true,
				Description: descriptions["enable_logging"],
			},
		},
	}
}
