package s3key

import (
	"context"
	"fmt"
	"net/http"

	"terraform-provider-powerscale/powerscale/helper/client"
)

func s3KeyPath(user, zone string) string {
	return client.ApiPath.ListWithQuery(client.ApiPath.S3KeysWithUser(user), S3KeyQuery{Zone: zone})
}

// getS3Key reads the key pair of user. A user without a key is reported as
// not found. OneFS never returns the secret after creation.
func getS3Key(ctx context.Context, c *client.Client, user, zone string) (*S3KeyDto, error) {
	resp := &S3KeyResponse{}
	if _, err := c.Get(ctx, s3KeyPath(user, zone), resp, nil); err != nil {
		return nil, err
	}

	if resp.Keys.AccessID == "" {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.S3KeysWithUser(user),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("no S3 key for user %s in zone %s", user, zone)),
		}
	}

	return &resp.Keys, nil
}
