package servercertificate

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

func webCert() ServerCertificateDto {
	return ServerCertificateDto{
		ID:           "f00d",
		Name:         "web",
		Status:       "valid",
		NotAfter:     1924992000,
		Fingerprints: []Fingerprint{{Type: "SHA256", Value: "01:02"}},
	}
}

func TestBuildServerCertificateUpdate(t *testing.T) {
	_, changed := buildServerCertificateUpdate(webCert(), "web", nil)
	assert.False(t, changed)

	update, changed := buildServerCertificateUpdate(webCert(), "web-2024", ptr.To("rotated"))
	assert.True(t, changed)
	assert.Equal(t, UpdateServerCertificateRequest{Name: ptr.To("web-2024"), Description: ptr.To("rotated")}, update)
}

func TestResourceServerCertificateCreateAsDefault(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.ServerCertificates, http.StatusCreated, map[string]any{"id": "f00d"})
	srv.JSON(http.MethodGet, client.ApiPath.ServerCertificateWithId("f00d"), http.StatusOK,
		GetServerCertificateResponse{Certificates: []ServerCertificateDto{webCert()}})
	srv.Status(http.MethodPut, client.ApiPath.CertificateSettings, http.StatusNoContent)
	srv.JSON(http.MethodGet, client.ApiPath.CertificateSettings, http.StatusOK,
		GetCertificateSettingsResponse{Settings: CertificateSettings{DefaultHttpsCertificate: "f00d"}})

	d := schema.TestResourceDataRaw(t, ResourceServerCertificate().Schema, map[string]interface{}{
		"certificate_path":         "/ifs/certs/web.pem",
		"certificate_key_path":     "/ifs/certs/web.key",
		"certificate_key_password": "s3cret",
		"name":                     "web",
		"is_default":               true,
	})

	diags := resourceServerCertificateCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "f00d", d.Id())
	assert.Equal(t, true, d.Get("is_default"))
	assert.Equal(t, "01:02", d.Get("fingerprint"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.ServerCertificates)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"certificate_path": "/ifs/certs/web.pem",
		"certificate_key_path": "/ifs/certs/web.key",
		"certificate_key_password": "s3cret",
		"name": "web"
	}`, string(posts[0].Body))

	puts := srv.Requests(http.MethodPut, client.ApiPath.CertificateSettings)
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"default_https_certificate":"f00d"}`, string(puts[0].Body))
}

func TestResourceServerCertificateReadNotDefault(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.ServerCertificateWithId("f00d"), http.StatusOK,
		GetServerCertificateResponse{Certificates: []ServerCertificateDto{webCert()}})
	srv.JSON(http.MethodGet, client.ApiPath.CertificateSettings, http.StatusOK,
		GetCertificateSettingsResponse{Settings: CertificateSettings{DefaultHttpsCertificate: "beef"}})

	d := schema.TestResourceDataRaw(t, ResourceServerCertificate().Schema, map[string]interface{}{
		"certificate_path":     "/ifs/certs/web.pem",
		"certificate_key_path": "/ifs/certs/web.key",
		"name":                 "web",
	})
	d.SetId("f00d")

	diags := resourceServerCertificateRead(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, false, d.Get("is_default"))
	assert.Empty(t, srv.Writes())
}
