package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/helper/fakeonefs"
)

func TestSessionAuthentication(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, "/platform/3/zones/System", http.StatusOK, map[string]any{"zones": []any{}})

	c, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.NoError(t, err)

	sessions := srv.Requests(http.MethodPost, client.ApiPath.Session)
	require.Len(t, sessions, 1)

	var payload map[string]any
	fakeonefs.Decode(t, sessions[0], &payload)
	assert.Equal(t, "admin", payload["username"])
	assert.Equal(t, []any{"platform", "namespace"}, payload["services"])

	_, err = c.Get(context.Background(), client.ApiPath.ZoneWithId("System"), &map[string]any{}, nil)
	require.NoError(t, err)

	gets := srv.Requests(http.MethodGet, "/platform/3/zones/System")
	require.Len(t, gets, 1)
	assert.Equal(t, fakeonefs.CsrfToken, gets[0].Header.Get("X-CSRF-Token"))
	assert.Equal(t, srv.URL, gets[0].Header.Get("Referer"))
	assert.Contains(t, gets[0].Header.Get("Cookie"), "isisessid="+fakeonefs.SessionID)
	assert.NotEmpty(t, gets[0].Header.Get("X-Request-ID"))
}

func TestBasicAuthentication(t *testing.T) {
	srv := fakeonefs.New(t)

	cfg := srv.ClientConfig()
	cfg.AuthType = client.AuthTypeBasic

	c, err := client.NewClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, srv.Requests(http.MethodPost, client.ApiPath.Session))

	_, err = c.GetClusterConfig(context.Background())
	require.NoError(t, err)

	gets := srv.Requests(http.MethodGet, client.ApiPath.ClusterConfig)
	require.Len(t, gets, 1)

	req := &http.Request{Header: gets[0].Header}
	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "admin", user)
	assert.Equal(t, "password", pass)
}

func TestSessionFailure(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.Error(http.MethodPost, client.ApiPath.Session, http.StatusUnauthorized, "Unable to authenticate user admin")

	_, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.Error(t, err)
	assert.True(t, client.ResponseCodeIs(err, http.StatusUnauthorized))
	assert.Contains(t, err.Error(), "Unable to authenticate user admin")
}

func TestReauthenticateOnExpiredSession(t *testing.T) {
	srv := fakeonefs.New(t)

	calls := 0
	srv.Handle(http.MethodGet, "/platform/1/quota/quotas", func(w http.ResponseWriter, r *http.Request, _ []byte) {
		calls++
		if calls == 1 {
			fakeonefs.WriteError(w, http.StatusUnauthorized, "AEC_UNAUTHORIZED", "session expired")
			return
		}
		fmt.Fprint(w, `{"quotas":[]}`)
	})

	c, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.NoError(t, err)

	resp := map[string]any{}
	_, err = c.Get(context.Background(), client.ApiPath.Quotas, &resp, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Len(t, srv.Requests(http.MethodPost, client.ApiPath.Session), 2)
}

func TestUnexpectedResponseCode(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.Error(http.MethodPut, client.ApiPath.QuotaWithId("abc"), http.StatusBadRequest, "Threshold hard must be greater than soft")

	c, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.NoError(t, err)

	_, err = c.Put(context.Background(), client.ApiPath.QuotaWithId("abc"), map[string]any{"enforced": true}, nil, nil)
	require.Error(t, err)

	var codeErr client.ErrUnexpectedResponseCode
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, http.StatusBadRequest, codeErr.Actual)
	assert.Equal(t, []int{200, 204}, codeErr.Expected)
	assert.Equal(t, "Threshold hard must be greater than soft", client.DetermineError(err))
	assert.False(t, client.ResponseCodeIs(err, http.StatusNotFound))
}

func TestNotFoundIsReportedAsNotFound(t *testing.T) {
	srv := fakeonefs.New(t)

	c, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.NoError(t, err)

	_, err = c.Get(context.Background(), client.ApiPath.SmbShareWithId("missing"), &map[string]any{}, nil)
	require.Error(t, err)
	assert.True(t, client.ResponseCodeIs(err, http.StatusNotFound))
}

func TestNoContentWithJSONResponse(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.Status(http.MethodPut, client.ApiPath.SyncSettings, http.StatusNoContent)

	c, err := client.NewClient(context.Background(), srv.ClientConfig())
	require.NoError(t, err)

	out := map[string]any{}
	resp, err := c.Put(context.Background(), client.ApiPath.SyncSettings, map[string]any{"service": "on"}, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, out)

	puts := srv.Requests(http.MethodPut, client.ApiPath.SyncSettings)
	require.Len(t, puts, 1)
	assert.Equal(t, "application/json", puts[0].Header.Get("Content-Type"))
	assert.JSONEq(t, `{"service":"on"}`, string(puts[0].Body))
}

func TestHttpProxy(t *testing.T) {
	proxy := fakeonefs.New(t)

	cfg := proxy.ClientConfig()
	cfg.Endpoint = "http://onefs.example:8080"
	cfg.AuthType = client.AuthTypeBasic
	cfg.HttpProxy = proxy.URL

	c, err := client.NewClient(context.Background(), cfg)
	require.NoError(t, err)

	cluster, err := c.GetClusterConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fake-cluster", cluster.Name)
	assert.Len(t, proxy.Requests(http.MethodGet, client.ApiPath.ClusterConfig), 1)
}
