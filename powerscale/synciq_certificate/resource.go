package synciqcertificate

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

func ResourceSyncCertificate() *schema.Resource {
	return &schema.Resource{
		Description:   "Imports a SyncIQ target cluster certificate.",
		CreateContext: resourceSyncCertificateCreate,
		ReadContext:   resourceSyncCertificateRead,
		UpdateContext: resourceSyncCertificateUpdate,
		DeleteContext: resourceSyncCertificateDelete,
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
			"name": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"description": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"fingerprint": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"status": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"subject": {
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

func resourceSyncCertificateCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	createOpts := CreatePeerCertificateRequest{
		CertificatePath: d.Get("certificate_path").(string),
		Name:            d.Get("name").(string),
		Description:     d.Get("description").(string),
	}

	tflog.Debug(ctx, "powerscale_synciq_certificate create options", map[string]interface{}{"create_opts": createOpts})

	createResp := &client.CreateResponse{}
	if _, err := c.Post(ctx, client.ApiPath.SyncPeerCertificates, createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_synciq_certificate %s: %s", createOpts.CertificatePath, client.DetermineError(err))
	}

	d.SetId(createResp.ID.String())

	return resourceSyncCertificateRead(ctx, d, meta)
}

func resourceSyncCertificateRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	cert, err := getPeerCertificate(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_synciq_certificate"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_synciq_certificate "+d.Id(), map[string]interface{}{"certificate": cert})

	d.Set("name", cert.Name)
	d.Set("description", cert.Description)
	d.Set("fingerprint", sha256Fingerprint(cert.Fingerprints))
	d.Set("status", cert.Status)
	d.Set("subject", cert.Subject)
	d.Set("not_after", cert.NotAfter)

	return nil
}

func resourceSyncCertificateUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	current, err := getPeerCertificate(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_synciq_certificate %s: %s", d.Id(), client.DetermineError(err))
	}

	var name, description *string
	if v, ok := util.GetOkExists(d, "name"); ok {
		name = ptr.To(v.(string))
	}
	if v, ok := util.GetOkExists(d, "description"); ok {
		description = ptr.To(v.(string))
	}

	updateOpts, changed := buildPeerCertificateUpdate(*current, name, description)
	if changed {
		tflog.Debug(ctx, "powerscale_synciq_certificate update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.SyncPeerCertificateWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_synciq_certificate %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceSyncCertificateRead(ctx, d, meta)
}

func resourceSyncCertificateDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.SyncPeerCertificateWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_synciq_certificate %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
