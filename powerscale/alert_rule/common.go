package alertrule

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

var conditions = []string{
	"NEW",
	"NEW EVENTS",
	"ONGOING",
	"SEVERITY INCREASE",
	"SEVERITY DECREASE",
	"RESOLVED",
}

func getAlertCondition(ctx context.Context, c *client.Client, name string) (*AlertConditionDto, error) {
	resp := &GetAlertConditionResponse{}
	if _, err := c.Get(ctx, client.ApiPath.EventAlertConditionWithId(name), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.AlertConditions) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.EventAlertConditionWithId(name),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("alert rule %s not found", name)),
		}
	}

	return &resp.AlertConditions[0], nil
}

func expandAlertConditionSpec(d *schema.ResourceData) AlertConditionSpec {
	spec := AlertConditionSpec{
		Condition: d.Get("condition").(string),
		Channels:  util.ExpandStringSet(d.Get("channels")),
	}

	if v, ok := d.GetOk("eventgroup_ids"); ok {
		spec.EventgroupIds = util.ExpandStringSet(v)
	}

	if v, ok := d.GetOk("categories"); ok {
		spec.Categories = util.ExpandStringSet(v)
	}

	if v, ok := util.GetOkExists(d, "interval"); ok {
		spec.Interval = ptr.To(v.(int))
	}

	if v, ok := util.GetOkExists(d, "limit"); ok {
		spec.Limit = ptr.To(v.(int))
	}

	if v, ok := util.GetOkExists(d, "transient"); ok {
		spec.Transient = ptr.To(v.(int))
	}

	return spec
}

func intChanged(desired *int, current int) *int {
	if desired != nil && *desired != current {
		return desired
	}
	return nil
}

func buildAlertConditionUpdate(current AlertConditionDto, desired AlertConditionSpec) (UpdateAlertConditionRequest, bool) {
	update := UpdateAlertConditionRequest{}
	changed := false

	if desired.Condition != "" && desired.Condition != current.Condition {
		update.Condition = ptr.To(desired.Condition)
		changed = true
	}

	if !util.StringSetsEqual(desired.Channels, current.Channels) {
		update.Channels = ptr.To(desired.Channels)
		changed = true
	}

	if desired.EventgroupIds != nil && !util.StringSetsEqual(desired.EventgroupIds, current.EventgroupIds) {
		update.EventgroupIds = ptr.To(desired.EventgroupIds)
		changed = true
	}

	if desired.Categories != nil && !util.StringSetsEqual(desired.Categories, current.Categories) {
		update.Categories = ptr.To(desired.Categories)
		changed = true
	}

	if v := intChanged(desired.Interval, current.Interval); v != nil {
		update.Interval = v
		changed = true
	}

	if v := intChanged(desired.Limit, current.Limit); v != nil {
		update.Limit = v
		changed = true
	}

	if v := intChanged(desired.Transient, current.Transient); v != nil {
		update.Transient = v
		changed = true
	}

	return update, changed
}
