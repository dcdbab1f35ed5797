package synciqcertificate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
)

func getPeerCertificate(ctx context.Context, c *client.Client, id string) (*PeerCertificateDto, error) {
	resp := &GetPeerCertificateResponse{}
	if _, err := c.Get(ctx, client.ApiPath.SyncPeerCertificateWithId(id), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Certificates) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.SyncPeerCertificateWithId(id),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("SyncIQ peer certificate %s not found", id)),
		}
	}

	return &resp.Certificates[0], nil
}

// sha256Fingerprint picks the SHA256 fingerprint, falling back to the first
// one reported.
func sha256Fingerprint(fps []Fingerprint) string {
	for _, fp := range fps {
		if strings.EqualFold(fp.Type, "SHA256") {
			return fp.Value
		}
	}
	if len(fps) > 0 {
		return fps[0].Value
	}
	return ""
}

func buildPeerCertificateUpdate(current PeerCertificateDto, name, description *string) (UpdatePeerCertificateRequest, bool) {
	update := UpdatePeerCertificateRequest{}

	if name != nil && *name != current.Name {
		update.Name = ptr.To(*name)
	}

	if description != nil && *description != current.Description {
		update.Description = ptr.To(*description)
	}

	return update, update != UpdatePeerCertificateRequest{}
}
