package servercertificate

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

// certificateSettingsLockKey serialises writes to the cluster-wide
// certificate settings.
const certificateSettingsLockKey = "certificate/settings"

func ResourceServerCertificate() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a TLS server certificate used by the cluster HTTPS services.",
		CreateContext: resourceServerCertificateCreate,
		ReadContext:   resourceServerCertificateRead,
		UpdateContext: resourceServerCertificateUpdate,
		DeleteContext: resourceServerCertificateDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"certificate_path": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"certificate_key_path": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: util.ValidateIfsPath,
			},
			"certificate_key_password": {
				Type:      schema.TypeString,
				Optional:  true,
				ForceNew:  true,
				Sensitive: true,
			},
			"name": {
				Type:     schema.TypeString,
				Required: true,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"is_default": {
				Type:     schema.TypeBool,
				Optional: true,
				Default:  false,
			},
			"fingerprint": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"status": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"not_after": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceServerCertificateCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	createOpts := CreateServerCertificateRequest{
		CertificatePath:        d.Get("certificate_path").(string),
		CertificateKeyPath:     d.Get("certificate_key_path").(string),
		CertificateKeyPassword: d.Get("certificate_key_password").(string),
		Name:                   d.Get("name").(string),
		Description:            d.Get("description").(string),
	}

	tflog.Debug(ctx, "powerscale_server_certificate create options", map[string]interface{}{
		"certificate_path":     createOpts.CertificatePath,
		"certificate_key_path": createOpts.CertificateKeyPath,
		"name":                 createOpts.Name,
	})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, client.ApiPath.ServerCertificates, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_server_certificate %s: %s", createOpts.Name, client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	if d.Get("is_default").(bool) {
		config.MutexKV.LockKey(certificateSettingsLockKey)
		defer config.MutexKV.UnlockKey(certificateSettingsLockKey)

		if err := setDefaultCertificate(ctx, c, d.Id()); err != nil {
			return diag.Errorf("Error setting powerscale_server_certificate %s as default: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceServerCertificateRead(ctx, d, meta)
}

func resourceServerCertificateRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	cert, err := getServerCertificate(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_server_certificate"))
	}

	defaultID, err := getDefaultCertificate(ctx, c)
	if err != nil {
		return diag.Errorf("Error retrieving certificate settings: %s", client.DetermineError(err))
	}

	tflog.Debug(ctx, "Retrieved powerscale_server_certificate "+d.Id(), map[string]interface{}{"certificate": cert})

	d.Set("name", cert.Name)
	d.Set("description", cert.Description)
	d.Set("is_default", defaultID == cert.ID)
	d.Set("fingerprint", fingerprint(cert.Fingerprints))
	d.Set("status", cert.Status)
	d.Set("not_after", cert.NotAfter)

	return nil
}

func resourceServerCertificateUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getServerCertificate(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_server_certificate %s: %s", d.Id(), client.DetermineError(err))
	}

	var description *string
	if v, ok := util.GetOkExists(d, "description"); ok {
		description = ptr.To(v.(string))
	}

	updateOpts, changed := buildServerCertificateUpdate(*current, d.Get("name").(string), description)
	if changed {
		tflog.Debug(ctx, "powerscale_server_certificate update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.ServerCertificateWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_server_certificate %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	// Clearing is_default leaves the cluster default in place; OneFS always
	// needs one HTTPS certificate.
	if d.HasChange("is_default") && d.Get("is_default").(bool) {
		config.MutexKV.LockKey(certificateSettingsLockKey)
		defer config.MutexKV.UnlockKey(certificateSettingsLockKey)

		if err := setDefaultCertificate(ctx, c, d.Id()); err != nil {
			return diag.Errorf("Error setting powerscale_server_certificate %s as default: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceServerCertificateRead(ctx, d, meta)
}

func resourceServerCertificateDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.ServerCertificateWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_server_certificate %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
