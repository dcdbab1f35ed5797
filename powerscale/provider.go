package powerscale

import (
	"context"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/logging"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	accesszone "terraform-provider-powerscale/powerscale/access_zone"
	alertchannel "terraform-provider-powerscale/powerscale/alert_channel"
	alertrule "terraform-provider-powerscale/powerscale/alert_rule"
	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/groupnet"
	"terraform-provider-powerscale/powerscale/helper/client"
	networkpool "terraform-provider-powerscale/powerscale/network_pool"
	nfsexport "terraform-provider-powerscale/powerscale/nfs_export"
	"terraform-provider-powerscale/powerscale/quota"
	s3key "terraform-provider-powerscale/powerscale/s3_key"
	servercertificate "terraform-provider-powerscale/powerscale/server_certificate"
	smbshare "terraform-provider-powerscale/powerscale/smb_share"
	"terraform-provider-powerscale/powerscale/snapshot"
	synciqcertificate "terraform-provider-powerscale/powerscale/synciq_certificate"
	synciqjob "terraform-provider-powerscale/powerscale/synciq_job"
	synciqpolicy "terraform-provider-powerscale/powerscale/synciq_policy"
	synciqrule "terraform-provider-powerscale/powerscale/synciq_rule"
	"terraform-provider-powerscale/powerscale/util"
)

// Provider returns the SDKv2 half of the PowerScale provider.
func Provider() *schema.Provider {
	provider := &schema.Provider{
		Schema: map[string]*schema.Schema{
			"endpoint": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvEndpoint, ""),
				Description: Descriptions["endpoint"],
			},

			"username": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvUsername, ""),
				Description: Descriptions["username"],
			},

			"password": {
				Type:        schema.TypeString,
				Optional:    true,
				Sensitive:   true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvPassword, ""),
				Description: Descriptions["password"],
			},

			"insecure": {
				Type:        schema.TypeBool,
				Optional:    true,
				Description: Descriptions["insecure"],
			},

			"auth_type": {
				Type:         schema.TypeString,
				Optional:     true,
				DefaultFunc:  schema.EnvDefaultFunc(config.EnvAuthType, ""),
				ValidateFunc: validation.StringInSlice([]string{"", client.AuthTypeSession, client.AuthTypeBasic}, false),
				Description:  Descriptions["auth_type"],
			},

			"timeout": {
				Type:         schema.TypeInt,
				Optional:     true,
				DefaultFunc:  schema.EnvDefaultFunc(config.EnvTimeout, config.DefaultTimeout),
				ValidateFunc: validation.IntAtLeast(1),
				Description:  Descriptions["timeout"],
			},

			"max_requests_per_second": {
				Type:         schema.TypeInt,
				Optional:     true,
				ValidateFunc: validation.IntAtLeast(0),
				Description:  Descriptions["max_requests_per_second"],
			},

			"config_file": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvConfigFile, ""),
				Description: Descriptions["config_file"],
			},

			"cluster": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvCluster, ""),
				Description: Descriptions["cluster"],
			},

			"http_proxy": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc(config.EnvHttpProxy, ""),
				Description: Descriptions["http_proxy"],
			},

			"enable_logging": {
				Type:        schema.TypeBool,
				Optional:    true,
				Default:     false,
				Description: Descriptions["enable_logging"],
			},
		},

		DataSourcesMap: map[string]*schema.Resource{
			"powerscale_access_zone": accesszone.DataSourceAccessZone(),
			"powerscale_nfs_export":  nfsexport.DataSourceNfsExport(),
		},

		ResourcesMap: map[string]*schema.Resource{
			"powerscale_access_zone":        accesszone.ResourceAccessZone(),
			"powerscale_groupnet":           groupnet.ResourceGroupnet(),
			"powerscale_network_pool":       networkpool.ResourceNetworkPool(),
			"powerscale_nfs_export":         nfsexport.ResourceNfsExport(),
			"powerscale_smb_share":          smbshare.ResourceSmbShare(),
			"powerscale_quota":              quota.ResourceQuota(),
			"powerscale_snapshot":           snapshot.ResourceSnapshot(),
			"powerscale_synciq_policy":      synciqpolicy.ResourceSyncPolicy(),
			"powerscale_synciq_rule":        synciqrule.ResourceSyncRule(),
			"powerscale_synciq_job":         synciqjob.ResourceSyncJob(),
			"powerscale_synciq_certificate": synciqcertificate.ResourceSyncCertificate(),
			"powerscale_server_certificate": servercertificate.ResourceServerCertificate(),
			"powerscale_alert_channel":      alertchannel.ResourceAlertChannel(),
			"powerscale_alert_rule":         alertrule.ResourceAlertRule(),
			"powerscale_s3_key":             s3key.ResourceS3Key(),
		},
	}

	provider.ConfigureContextFunc = func(ctx context.Context, d *schema.ResourceData) (interface{}, diag.Diagnostics) {
		return configureProvider(ctx, d)
	}

	return provider
}

var Descriptions = map[string]string{
	"endpoint": "The PowerScale platform API endpoint, for example https://10.0.0.10:8080. " +
		"Falls back to POWERSCALE_ENDPOINT.",

	"username": "The user to authenticate as. Falls back to POWERSCALE_USERNAME.",

	"password": "The password of the user. Falls back to POWERSCALE_PASSWORD.",

	"insecure": "Trust self-signed SSL certificates. Falls back to POWERSCALE_INSECURE.",

	"auth_type": "How to authenticate against the platform API: `session` (default) or `basic`.",

	"timeout": "Per-request HTTP timeout in seconds.",

	"max_requests_per_second": "Client side limit on API calls per second. 0 disables the limit.",

	"config_file": "YAML file with named cluster profiles used for any setting left empty.",

	"cluster": "Name of the profile to use from config_file. The default profile is used otherwise.",

	"http_proxy": "Proxy URL used to reach the platform API. Falls back to POWERSCALE_HTTP_PROXY.",

	"enable_logging": "Outputs very verbose logs with all calls made to and responses from PowerScale",
}

func configureProvider(ctx context.Context, d *schema.ResourceData) (interface{}, diag.Diagnostics) {
	enableLogging := d.Get("enable_logging").(bool)
	if !enableLogging {
		// enforce logging when TF_LOG is 'DEBUG' or 'TRACE'
		if logLevel := logging.LogLevel(); logLevel == "DEBUG" || logLevel == "TRACE" {
			enableLogging = true
		}
	}

	cfg := config.Config{
		Endpoint:             d.Get("endpoint").(string),
		Username:             d.Get("username").(string),
		Password:             d.Get("password").(string),
		AuthType:             d.Get("auth_type").(string),
		Timeout:              d.Get("timeout").(int),
		MaxRequestsPerSecond: d.Get("max_requests_per_second").(int),
		ConfigFile:           d.Get("config_file").(string),
		Cluster:              d.Get("cluster").(string),
		HttpProxy:            d.Get("http_proxy").(string),
		EnableLogging:        enableLogging,
	}

	v, ok := util.GetOkExists(d, "insecure")
	if ok {
		insecure := v.(bool)
		cfg.Insecure = &insecure
	} else {
		cfg.Insecure = config.EnvBool(config.EnvInsecure)
	}

	if err := cfg.LoadAndValidate(ctx); err != nil {
		return nil, diag.Errorf("Unable to create the PowerScale API client: %s", err)
	}

	return &cfg, nil
}
