package snapshot

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

func ResourceSnapshot() *schema.Resource {
	return &schema.Resource{
		Description:   "Manages a SnapshotIQ snapshot.",
		CreateContext: resourceSnapshotCreate,
		ReadContext:   resourceSnapshotRead,
		UpdateContext: resourceSnapshotUpdate,
		DeleteContext: resourceSnapshotDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"path": {
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
			"alias": {
				Type:     schema.TypeString,
				Optional: true,
				Computed: true,
			},
			"expires": {
				Type:         schema.TypeString,
				Optional:     true,
				Computed:     true,
				ValidateFunc: validateExpires,
				Description:  "Expiry as an RFC3339 timestamp. Empty means the snapshot never expires.",
			},
			"created": {
				Type:     schema.TypeInt,
				Computed: true,
			},
			"size": {
				Type:     schema.TypeInt,
				Computed: true,
			},
			"state": {
				Type:     schema.TypeString,
				Computed: true,
			},
		},
	}
}

func resourceSnapshotCreate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec, err := expandSnapshotSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	createOpts := CreateSnapshotRequest{
		Path:    d.Get("path").(string),
		Name:    spec.Name,
		Expires: spec.Expires,
	}
	if spec.Alias != nil {
		createOpts.Alias = *spec.Alias
	}

	tflog.Debug(ctx, "powerscale_snapshot create options", map[string]interface{}{"create_opts": createOpts})

	snapshot := &SnapshotDto{}
	if _, err := c.Post(ctx, client.ApiPath.Snapshots, createOpts, snapshot, nil); err != nil {
		return diag.Errorf("Error creating powerscale_snapshot of %s: %s", createOpts.Path, client.DetermineError(err))
	}

	d.SetId(snapshot.ID.String())

	return resourceSnapshotRead(ctx, d, meta)
}

func resourceSnapshotRead(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	snapshot, err := getSnapshot(ctx, c, d.Id())
	if err != nil {
		return diag.FromErr(util.CheckNotFound(d, err, "Error retrieving powerscale_snapshot"))
	}

	tflog.Debug(ctx, "Retrieved powerscale_snapshot "+d.Id(), map[string]interface{}{"snapshot": snapshot})

	d.Set("path", snapshot.Path)
	d.Set("name", snapshot.Name)
	d.Set("alias", snapshot.Alias)
	d.Set("expires", formatExpires(snapshot.Expires))
	d.Set("created", snapshot.Created)
	d.Set("size", snapshot.Size)
	d.Set("state", snapshot.State)

	return nil
}

func resourceSnapshotUpdate(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	spec, err := expandSnapshotSpec(d)
	if err != nil {
		return diag.FromErr(err)
	}

	current, err := getSnapshot(ctx, c, d.Id())
	if err != nil {
		return diag.Errorf("Error retrieving powerscale_snapshot %s: %s", d.Id(), client.DetermineError(err))
	}

	updateOpts, changed := buildSnapshotUpdate(*current, spec)
	if changed {
		tflog.Debug(ctx, "powerscale_snapshot update options", map[string]interface{}{"update_opts": updateOpts})

		if _, err := c.Put(ctx, client.ApiPath.SnapshotWithId(d.Id()), updateOpts, nil, nil); err != nil {
			return diag.Errorf("Error updating powerscale_snapshot %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return resourceSnapshotRead(ctx, d, meta)
}

func resourceSnapshotDelete(ctx context.Context, d *schema.ResourceData, meta interface{}) diag.Diagnostics {
	config := meta.(*config.Config)
	c := config.PowerScaleClient()

	if _, err := c.Delete(ctx, client.ApiPath.SnapshotWithId(d.Id()), nil); err != nil {
		if err := util.IgnoreNotFound(err); err != nil {
			return diag.Errorf("Error deleting powerscale_snapshot %s: %s", d.Id(), client.DetermineError(err))
		}
	}

	return nil
}
