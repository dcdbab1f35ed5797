package quota

import (
	"context"
	"net/http"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/terraform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

const gib = int64(1 << 30)

func quotaAbc() QuotaDto {
	return QuotaDto{
		ID:       "AAcBAAAAAAAAAAAAAAAAAAA",
		Path:     "/ifs/data/projects",
		Type:     "directory",
		Enforced: true,
		Thresholds: Thresholds{
			Hard:      ptr.To(10 * gib),
			Soft:      ptr.To(8 * gib),
			SoftGrace: ptr.To(86400),
		},
		Usage: Usage{Logical: 3 * gib, Physical: 4 * gib},
	}
}

func TestBuildQuotaUpdate(t *testing.T) {
	_, changed := buildQuotaUpdate(quotaAbc(), QuotaSpec{
		Enforced:   ptr.To(true),
		Thresholds: Thresholds{Hard: ptr.To(10 * gib)},
	})
	assert.False(t, changed)

	update, changed := buildQuotaUpdate(quotaAbc(), QuotaSpec{
		Thresholds: Thresholds{Hard: ptr.To(20 * gib), Soft: ptr.To(8 * gib), SoftGrace: ptr.To(86400)},
	})
	assert.True(t, changed)
	require.NotNil(t, update.Thresholds)
	assert.Equal(t, 20*gib, *update.Thresholds.Hard)
	assert.Equal(t, 8*gib, *update.Thresholds.Soft)
	assert.Nil(t, update.Enforced)

	update, changed = buildQuotaUpdate(quotaAbc(), QuotaSpec{
		Thresholds: Thresholds{Advisory: ptr.To(5 * gib)},
	})
	assert.True(t, changed)
	assert.Equal(t, &Thresholds{
		Hard:      ptr.To(10 * gib),
		Soft:      ptr.To(8 * gib),
		Advisory:  ptr.To(5 * gib),
		SoftGrace: ptr.To(86400),
	}, update.Thresholds)

	update, changed = buildQuotaUpdate(quotaAbc(), QuotaSpec{Enforced: ptr.To(false)})
	assert.True(t, changed)
	assert.Nil(t, update.Thresholds)
	assert.Equal(t, ptr.To(false), update.Enforced)
}

func TestResourceQuotaCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.Quotas, http.StatusCreated, map[string]any{"id": "AAcBAAAAAAAAAAAAAAAAAAA"})
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{quotaAbc()}})

	d := schema.TestResourceDataRaw(t, ResourceQuota().Schema, map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"enforced":   true,
		"hard_limit": 10.0,
		"soft_limit": 8.0,
		"soft_grace": 86400,
	})

	diags := resourceQuotaCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "AAcBAAAAAAAAAAAAAAAAAAA", d.Id())
	assert.Equal(t, 10.0, d.Get("hard_limit"))
	assert.Equal(t, 3*int(gib), d.Get("usage_logical"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.Quotas)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"path": "/ifs/data/projects",
		"type": "directory",
		"include_snapshots": false,
		"enforced": true,
		"thresholds": {"hard": 10737418240, "soft": 8589934592, "soft_grace": 86400}
	}`, string(posts[0].Body))
}

func TestResourceQuotaCreateUserPersona(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.Quotas, http.StatusCreated, map[string]any{"id": "q2"})
	userQuota := quotaAbc()
	userQuota.Type = "user"
	userQuota.Persona = &client.Persona{ID: "UID:2001", Name: "alice", Type: "user"}
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("q2"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{userQuota}})

	d := schema.TestResourceDataRaw(t, ResourceQuota().Schema, map[string]interface{}{
		"path":     "/ifs/data/projects",
		"type":     "user",
		"persona":  "alice",
		"zone":     "zone1",
		"cap_unit": "TB",
	})

	diags := resourceQuotaCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "alice", d.Get("persona"))
	assert.Equal(t, 0.01, d.Get("hard_limit"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.Quotas)
	require.Len(t, posts, 1)
	assert.Equal(t, "zone1", posts[0].Query.Get("zone"))

	var payload CreateQuotaRequest
	fakeonefs.Decode(t, posts[0], &payload)
	assert.Equal(t, &client.Persona{Name: "alice", Type: "user"}, payload.Persona)
	assert.Nil(t, payload.Thresholds)
}

func TestResourceQuotaSoftLimitNeedsGrace(t *testing.T) {
	srv := fakeonefs.New(t)

	d := schema.TestResourceDataRaw(t, ResourceQuota().Schema, map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"soft_limit": 1.0,
	})

	diags := resourceQuotaCreate(context.Background(), d, srv.Meta(t))
	require.True(t, diags.HasError())
	assert.Contains(t, diags[0].Summary, "soft_grace")
	assert.Empty(t, srv.Writes())
}

func TestResourceQuotaUpdate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{quotaAbc()}})
	srv.Status(http.MethodPut, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusNoContent)

	d := schema.TestResourceDataRaw(t, ResourceQuota().Schema, map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"hard_limit": 12.5,
	})
	d.SetId("AAcBAAAAAAAAAAAAAAAAAAA")

	diags := resourceQuotaUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"thresholds":{"hard":13421772800,"soft":8589934592,"soft_grace":86400}}`, string(puts[0].Body))
}

func TestResourceQuotaUpdateNoChange(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{quotaAbc()}})

	d := schema.TestResourceDataRaw(t, ResourceQuota().Schema, map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"hard_limit": 10.0,
		"soft_limit": 8.0,
		"soft_grace": 86400,
		"enforced":   true,
	})
	d.SetId("AAcBAAAAAAAAAAAAAAAAAAA")

	diags := resourceQuotaUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, srv.Writes())
}

// quotaOffStep holds a soft limit of 8.005 GiB, which Read reports as 8.0.
func quotaOffStep() QuotaDto {
	q := quotaAbc()
	q.Thresholds.Soft = ptr.To(int64(8595303301))
	return q
}

func TestBuildQuotaUpdateKeepsUnmanagedLimits(t *testing.T) {
	update, changed := buildQuotaUpdate(quotaOffStep(), QuotaSpec{
		Unit:       "GB",
		Thresholds: Thresholds{Hard: ptr.To(20 * gib)},
	})
	assert.True(t, changed)
	assert.Equal(t, &Thresholds{
		Hard:      ptr.To(20 * gib),
		Soft:      ptr.To(int64(8595303301)),
		SoftGrace: ptr.To(86400),
	}, update.Thresholds)

	update, changed = buildQuotaUpdate(quotaOffStep(), QuotaSpec{
		Unit:       "GB",
		Thresholds: Thresholds{Hard: ptr.To(20 * gib), Soft: ptr.To(8 * gib)},
	})
	assert.True(t, changed)
	assert.Equal(t, int64(8595303301), *update.Thresholds.Soft)

	_, changed = buildQuotaUpdate(quotaOffStep(), QuotaSpec{
		Unit:       "GB",
		Thresholds: Thresholds{Hard: ptr.To(10 * gib), Soft: ptr.To(8 * gib)},
	})
	assert.False(t, changed)
}

func TestResourceQuotaUpdateKeepsArraySoftLimit(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{quotaOffStep()}})
	srv.Status(http.MethodPut, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusNoContent)

	r := ResourceQuota()
	state := &terraform.InstanceState{
		ID: "AAcBAAAAAAAAAAAAAAAAAAA",
		Attributes: map[string]string{
			"id":                          "AAcBAAAAAAAAAAAAAAAAAAA",
			"path":                        "/ifs/data/projects",
			"type":                        "directory",
			"zone":                        "System",
			"include_snapshots":           "false",
			"cap_unit":                    "GB",
			"hard_limit":                  "10",
			"soft_limit":                  "8",
			"soft_grace":                  "86400",
			"enforced":                    "true",
			"thresholds_include_overhead": "false",
			"container":                   "false",
		},
	}
	diff, err := r.Diff(context.Background(), state, terraform.NewResourceConfigRaw(map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"hard_limit": 20.0,
	}), nil)
	require.NoError(t, err)

	d, err := schema.InternalMap(r.Schema).Data(state, diff)
	require.NoError(t, err)

	diags := resourceQuotaUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)

	puts := srv.Requests(http.MethodPut, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"))
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"thresholds":{"hard":21474836480,"soft":8595303301,"soft_grace":86400}}`, string(puts[0].Body))
}

func TestResourceQuotaImport(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.QuotaWithId("AAcBAAAAAAAAAAAAAAAAAAA"), http.StatusOK, GetQuotaResponse{Quotas: []QuotaDto{quotaAbc()}})

	r := ResourceQuota()
	d := r.Data(&terraform.InstanceState{ID: "System:AAcBAAAAAAAAAAAAAAAAAAA"})

	res, err := r.Importer.StateContext(context.Background(), d, srv.Meta(t))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "AAcBAAAAAAAAAAAAAAAAAAA", res[0].Id())
	assert.Equal(t, "System", res[0].Get("zone"))

	diags := resourceQuotaRead(context.Background(), res[0], srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "GB", res[0].Get("cap_unit"))

	diff, err := r.Diff(context.Background(), res[0].State(), terraform.NewResourceConfigRaw(map[string]interface{}{
		"path":       "/ifs/data/projects",
		"type":       "directory",
		"enforced":   true,
		"hard_limit": 10.0,
		"soft_limit": 8.0,
		"soft_grace": 86400,
	}), nil)
	require.NoError(t, err)
	if diff != nil {
		assert.False(t, diff.RequiresNew(), "%v", diff.Attributes)
		assert.NotContains(t, diff.Attributes, "zone")
	}

	_, err = resourceQuotaImport(context.Background(), r.Data(&terraform.InstanceState{ID: ":abc"}), nil)
	assert.Error(t, err)
}

func TestResourceQuotaLimitPrecision(t *testing.T) {
	validate := ResourceQuota().Schema["hard_limit"].ValidateFunc

	_, errs := validate(1.23, "hard_limit")
	assert.Empty(t, errs)

	_, errs = validate(1.234, "hard_limit")
	assert.NotEmpty(t, errs)
}
