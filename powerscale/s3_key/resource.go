package s3key

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceS3Key() *schema.Resource {
	return &schema.Resource{
		Description:   "Generates an S3 access key pair for a user.",
		CreateContext: resourceS3KeyCreate,
		ReadContext:   resourceS3KeyRead,
		DeleteContext: resourceS3KeyDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceS3KeyImport,
		},
		Schema: map[string]*schema.Schema{
			"user": {
				Type:     schema.TypeString,
				Required: true,
				ForceNew: true,
			},
			"zone": {
				Type:     schema.TypeString,
				Optional: true,
				ForceNew: true,
				Default:  util.DefaultZone,
			},
			"existing_key_expiry_minutes": {
				Type:         schema.TypeInt,
				Optional:     true,
				ForceNew:     true,
				ValidateFunc: validation.IntBetween(0, 1440),
				Description:  "Minutes the previous secret stays valid after a new key is generated.",
			},
			"access_id": {
				Type:     schema.TypeString,
				Computed: true,
			},
			"secret_key": {
				Type:      schema.TypeString,
				Computed:  true,
				Sensitive: true,
			},
			"secret_key_timestamp": {
				Type:     schema.TypeInt,
				Computed: true,
			},
		},
	}
}

func resourceS3KeyCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	user := d.Get("user").(string)
	zone := d.Get("zone").(string)

	createOpts := CreateS3KeyRequest{}
	if v, ok := util.GetOkExists(d, "existing_key_expiry_minutes"); ok {
		createOpts.ExistingKeyExpiryMinutes = ptr.To(v.(int))
	}

	tflog.Debug(ctx, "powerscale_s3_key create options", map[string]interface{}{"user": user, "zone": zone, "create_opts": createOpts})

	createResp := &S3KeyResponse{}
	if _, err := c.Post(ctx, s3KeyPath(user, zone), createOpts, createResp, nil); err != nil {
		return diag.Errorf("Error creating powerscale_s3_key for user %s: %s", user, client.DetermineError(err))
	}

	d.SetId(user)
	d.Set("secret_key", createResp.Keys.SecretKey)

	return resourceS3KeyRead(ctx, d, meta)
}

func resourceS3KeyRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	key, err := getS3Key(ctx, c, d.Id(), d.Get("zone").(string))
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_s3_key"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_s3_key "+d.Id(), map[string]interface{}{
		"access_id":            key.AccessID,
		"secret_key_timestamp": key.SecretKeyTimestamp,
	})

	d.Set("user", d.Id())
	d.Set("access_id", key.AccessID)
	d.Set("secret_key_timestamp", key.SecretKeyTimestamp)

	return nil
}

func resourceS3KeyDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, s3KeyPath(d.Id(), d.Get("zone").(string)), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_s3_key %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}

func resourceS3KeyImport(ctx context.Context, d *schema.ResourceData, meta interface{}) ([]*schema.ResourceData, error) {
	zone, user, err := util.ParseZonedID(d.Id())
	if err != nil {
		return nil, err
	}

	d.SetId(user)
	d.Set("zone", zone)
	d.Set("user", user)

	return []*schema.ResourceData{d}, nil
}
