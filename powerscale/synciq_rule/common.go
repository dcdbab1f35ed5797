package synciqrule

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

var (
	ruleTypes  = []string{"bandwidth", "file_count", "cpu", "worker"}
	daysOfWeek = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	clockRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// validateRuleLimit checks limit against the unit implied by the rule type:
// kb/s for bandwidth, files/s for file_count and percent for cpu and worker.
func validateRuleLimit(ruleType string, limit int) error {
	switch ruleType {
	case "cpu", "worker":
		if limit < 0 || limit > 100 {
			return fmt.Errorf("limit for a %s rule is a percentage between 0 and 100, got %d", ruleType, limit)
		}
	case "bandwidth", "file_count":
		if limit < 0 {
			return fmt.Errorf("limit for a %s rule must not be negative, got %d", ruleType, limit)
		}
	default:
		return fmt.Errorf("unsupported rule type %q", ruleType)
	}
	return nil
}

func getSyncRule(ctx context.Context, c *client.Client, id string) (*SyncRuleDto, error) {
	resp := &GetSyncRuleResponse{}
	if _, err := c.Get(ctx, client.ApiPath.SyncRuleWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Rules) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.SyncRuleWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("SyncIQ rule %s not found", id)),
		}
	}

	return &resp.Rules[0], nil
}

func expandSchedule(v interface{}) *RuleSchedule {
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 || list[0] == nil {
		return nil
	}

	m := list[0].(map[string]interface{})
	return &RuleSchedule{
		Begin:      m["begin"].(string),
		End:        m["end"].(string),
		DaysOfWeek: util.ExpandStringSet(m["days_of_week"]),
	}
}

func flattenSchedule(s *RuleSchedule) []interface{} {
	if s == nil {
		return []interface{}{}
	}
	return []interface{}{map[string]interface{}{
		"begin":        s.Begin,
		"end":          s.End,
		"days_of_week": s.DaysOfWeek,
	}}
}

func expandSyncRuleSpec(d *schema.ResourceData) SyncRuleSpec {
	spec := SyncRuleSpec{
		Limit:    d.Get("limit").(int),
		Schedule: expandSchedule(d.Get("schedule")),
	}

	if v, ok := util.GetOkExists(d, "enabled"); ok {
		spec.Enabled = ptr.To(v.(bool))
	}

	if v, ok := util.GetOkExists(d, "description"); ok {
		spec.Description = ptr.To(v.(string))
	}

	return spec
}

func schedulesEqual(a, b *RuleSchedule) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Begin == b.Begin && a.End == b.End && util.StringSetsEqual(a.DaysOfWeek, b.DaysOfWeek)
}

func buildSyncRuleUpdate(current SyncRuleDto, desired SyncRuleSpec) (UpdateSyncRuleRequest, bool) {
	update := UpdateSyncRuleRequest{}
	changed := false

	if desired.Limit != current.Limit {
		update.Limit = ptr.To(desired.Limit)
		changed = true
	}

	if desired.Enabled != nil && *desired.Enabled != current.Enabled {
		update.Enabled = desired.Enabled
		changed = true
	}

	if desired.Description != nil && *desired.Description != current.Description {
		update.Description = desired.Description
		changed = true
	}

	if desired.Schedule != nil && !schedulesEqual(desired.Schedule, current.Schedule) {
		update.Schedule = desired.Schedule
		changed = true
	}

	return update, changed
}
