package synciqrule

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

func cpuRule() SyncRuleDto {
	return SyncRuleDto{
		ID:      "cpu-0",
		Type:    "cpu",
		Limit:   50,
		Enabled: true,
		Schedule: &RuleSchedule{
			Begin:      "08:00",
			End:        "18:00",
			DaysOfWeek: []string{"monday", "tuesday"},
		},
	}
}

func TestValidateRuleLimit(t *testing.T) {
	assert.NoError(t, validateRuleLimit("cpu", 100))
	assert.NoError(t, validateRuleLimit("worker", 0))
	assert.NoError(t, validateRuleLimit("bandwidth", 100000))
	assert.Error(t, validateRuleLimit("cpu", 101))
	assert.Error(t, validateRuleLimit("worker", -1))
	assert.Error(t, validateRuleLimit("file_count", -5))
	assert.Error(t, validateRuleLimit("latency", 1))
}

func TestBuildSyncRuleUpdate(t *testing.T) {
	_, changed := buildSyncRuleUpdate(cpuRule(), SyncRuleSpec{
		Limit: 50,
		Schedule: &RuleSchedule{
			Begin:      "08:00",
			End:        "18:00",
			DaysOfWeek: []string{"tuesday", "monday"},
		},
	})
	assert.False(t, changed)

	update, changed := buildSyncRuleUpdate(cpuRule(), SyncRuleSpec{Limit: 25, Enabled: ptr.To(false)})
	assert.True(t, changed)
	assert.Equal(t, UpdateSyncRuleRequest{Limit: ptr.To(25), Enabled: ptr.To(false)}, update)

	update, changed = buildSyncRuleUpdate(cpuRule(), SyncRuleSpec{
		Limit:    50,
		Schedule: &RuleSchedule{Begin: "08:00", End: "20:00", DaysOfWeek: []string{"monday", "tuesday"}},
	})
	assert.True(t, changed)
	assert.Equal(t, "20:00", update.Schedule.End)
	assert.Nil(t, update.Limit)
}

func TestResourceSyncRuleCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.SyncRules, http.StatusCreated, map[string]any{"id": "cpu-0"})
	srv.JSON(http.MethodGet, client.ApiPath.SyncRuleWithId("cpu-0"), http.StatusOK, GetSyncRuleResponse{Rules: []SyncRuleDto{cpuRule()}})

	d := schema.TestResourceDataRaw(t, ResourceSyncRule().Schema, map[string]interface{}{
		"type":  "cpu",
		"limit": 50,
		"schedule": []interface{}{
			map[string]interface{}{
				"begin":        "08:00",
				"end":          "18:00",
				"days_of_week": []interface{}{"tuesday", "monday"},
			},
		},
	})

	diags := resourceSyncRuleCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "cpu-0", d.Id())
	assert.Equal(t, true, d.Get("enabled"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.SyncRules)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"type": "cpu",
		"limit": 50,
		"schedule": {"begin": "08:00", "end": "18:00", "days_of_week": ["monday", "tuesday"]}
	}`, string(posts[0].Body))
}

func TestResourceSyncRuleCreateRejectsPercent(t *testing.T) {
	srv := fakeonefs.New(t)

	d := schema.TestResourceDataRaw(t, ResourceSyncRule().Schema, map[string]interface{}{
		"type":  "worker",
		"limit": 150,
	})

	diags := resourceSyncRuleCreate(context.Background(), d, srv.Meta(t))
	require.True(t, diags.HasError())
	assert.Empty(t, srv.Writes())
}

func TestResourceSyncRuleUpdate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.SyncRuleWithId("cpu-0"), http.StatusOK, GetSyncRuleResponse{Rules: []SyncRuleDto{cpuRule()}})
	srv.Status(http.MethodPut, client.ApiPath.SyncRuleWithId("cpu-0"), http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceSyncRule().Schema, map[string]interface{}{
		"type":  "cpu",
		"limit": 75,
	})
	d.SetId("cpu-0")

	diags := resourceSyncRuleUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.SyncRuleWithId("cpu-0"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"limit":75}`, string(puts[0].Body))
}
