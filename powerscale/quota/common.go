package quota

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

var quotaTypes = []string{"directory", "user", "group", "default-user", "default-group"}

func getQuota(ctx context.Context, c *client.Client, id string) (*QuotaDto, error) {
	resp := &GetQuotaResponse{}
	if _, err := c.Get(ctx, client.ApiPath.QuotaWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Quotas) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.QuotaWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("quota %s not found", id)),
		}
	}

	return &resp.Quotas[0], nil
}

// personaFor builds the persona sent for user and group quotas.
func personaFor(quotaType, name string) *client.Persona {
	if name == "" {
		return nil
	}

	switch quotaType {
	case "user":
		return &client.Persona{Name: name, Type: "user"}
	case "group":
		return &client.Persona{Name: name, Type: "group"}
	}

	return nil
}

// limitBytes reads a limit from configuration only. Limits left out of the
// configuration stay whatever the array holds.
func limitBytes(d *schema.ResourceData, key, unit string) (*int64, error) {
	v, ok := util.GetOkExists(d, key)
	if !ok {
		return nil, nil
	}

	b, err := util.SizeToBytes(v.(float64), unit)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}

	return ptr.To(b), nil
}

func expandQuotaSpec(d *schema.ResourceData) (QuotaSpec, error) {
	unit := d.Get("cap_unit").(string)
	spec := QuotaSpec{Unit: unit}

	var err error
	if spec.Thresholds.Hard, err = limitBytes(d, "hard_limit", unit); err != nil {
		return spec, err
	}
	if spec.Thresholds.Soft, err = limitBytes(d, "soft_limit", unit); err != nil {
		return spec, err
	}
	if spec.Thresholds.Advisory, err = limitBytes(d, "advisory_limit", unit); err != nil {
		return spec, err
	}

	if v, ok := util.GetOkExists(d, "soft_grace"); ok {
		spec.Thresholds.SoftGrace = ptr.To(v.(int))
	}

	if v, ok := util.GetOkExists(d, "thresholds_include_overhead"); ok {
		spec.ThresholdsIncludeOverhead = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "enforced"); ok {
		spec.Enforced = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "container"); ok {
		spec.Container = ptr.To(v.(bool))
	}

	return spec, nil
}

// limitChanged treats a desired limit equal to the current one at the
// precision of unit as unchanged.
func limitChanged(desired, current *int64, unit string) bool {
	if desired == nil {
		return false
	}
	if current == nil {
		return true
	}
	return *desired != *current && !util.SameAtUnit(*current, *desired, unit)
}

func pickLimit(desired, current *int64, unit string) *int64 {
	if limitChanged(desired, current, unit) {
		return desired
	}
	return current
}

// buildQuotaUpdate diffs desired against current. The array validates hard,
// soft and advisory against each other, so when any threshold moves the
// block is sent whole, with unchanged thresholds carried over in bytes.
func buildQuotaUpdate(current QuotaDto, desired QuotaSpec) (UpdateQuotaRequest, bool) {
	update := UpdateQuotaRequest{}
	changed := false

	if desired.ThresholdsIncludeOverhead != nil && *desired.ThresholdsIncludeOverhead != current.ThresholdsIncludeOverhead {
		update.ThresholdsIncludeOverhead = desired.ThresholdsIncludeOverhead
		changed = true
	}

	if desired.Enforced != nil && *desired.Enforced != current.Enforced {
		update.Enforced = desired.Enforced
		changed = true
	}

	if desired.Container != nil && *desired.Container != current.Container {
		update.Container = desired.Container
		changed = true
	}

	want, have := desired.Thresholds, current.Thresholds
	softGraceChanged := want.SoftGrace != nil && (have.SoftGrace == nil || *want.SoftGrace != *have.SoftGrace)
	unit := desired.Unit
	if limitChanged(want.Hard, have.Hard, unit) || limitChanged(want.Soft, have.Soft, unit) ||
		limitChanged(want.Advisory, have.Advisory, unit) || softGraceChanged {
		update.Thresholds = &Thresholds{
			Hard:      pickLimit(want.Hard, have.Hard, unit),
			Soft:      pickLimit(want.Soft, have.Soft, unit),
			Advisory:  pickLimit(want.Advisory, have.Advisory, unit),
			SoftGrace: have.SoftGrace,
		}
		if softGraceChanged {
			update.Thresholds.SoftGrace = want.SoftGrace
		}
		changed = true
	}

	return update, changed
}

func setLimit(d *schema.ResourceData, key string, bytes *int64, unit string) {
	if bytes == nil {
		d.Set(key, nil)
		return
	}

	size, err := util.BytesToSize(*bytes, unit)
	if err != nil {
		return
	}
	d.Set(key, size)
}
