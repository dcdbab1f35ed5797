package servercertificate

import (
	"context"
	"fmt"
	"net/http"

	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
)

func getServerCertificate(ctx context.Context, c *client.Client, id string) (*ServerCertificateDto, error) {
	resp := &GetServerCertificateResponse{}
	if _, err := c.Get(ctx, client.ApiPath.ServerCertificateWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Certificates) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.ServerCertificateWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("server certificate %s not found", id)),
		}
	}

	return &resp.Certificates[0], nil
}

func getDefaultCertificate(ctx context.Context, c *client.Client) (string, error) {
	resp := &GetCertificateSettingsResponse{}
	if _, err := c.Get(ctx, client.ApiPath.CertificateSettings, resp, nil); err != nil {
		return "", err
	}
	return resp.Settings.DefaultHttpsCertificate, nil
}

func setDefaultCertificate(ctx context.Context, c *client.Client, id string) error {
	_, err := c.Put(ctx, client.ApiPath.CertificateSettings, CertificateSettings{DefaultHttpsCertificate: id}, nil, nil)
	return err
}

func fingerprint(fps []Fingerprint) string {
	for _, fp := range fps {
		if fp.Type == "SHA256" {
			return fp.Value
		}
	}
	return ""
}

func buildServerCertificateUpdate(current ServerCertificateDto, name string, description *string) (UpdateServerCertificateRequest, bool) {
	update := UpdateServerCertificateRequest{}

	if name != "" && name != current.Name {
		update.Name = ptr.To(name)
	}

	if description != nil && *description != current.Description {
		update.Description = description
	}

	return update, update != UpdateServerCertificateRequest{}
}
