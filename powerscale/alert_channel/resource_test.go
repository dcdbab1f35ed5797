package alertchannel

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

func smtpChannel() AlertChannelDto {
	return AlertChannelDto{
		ID:           3,
		Name:         "ops-mail",
		Type:         ChannelTypeSmtp,
		Enabled:      true,
		AllowedNodes: []int{1, 2},
		Parameters: ChannelParameters{
			Address:  []string{"ops@example.com", "oncall@example.com"},
			SmtpHost: "mail.example.com",
			SmtpPort: 25,
			Batch:    "none",
		},
	}
}

func TestBuildAlertChannelUpdate(t *testing.T) {
	_, changed := buildAlertChannelUpdate(smtpChannel(), AlertChannelSpec{
		AllowedNodes: []int{2, 1},
		Parameters: &ChannelParameters{
			Address:  []string{"oncall@example.com", "ops@example.com"},
			SmtpHost: "mail.example.com",
			SmtpPort: 25,
			Batch:    "none",
		},
	})
	assert.False(t, changed)

	update, changed := buildAlertChannelUpdate(smtpChannel(), AlertChannelSpec{
		Enabled:       ptr.To(false),
		ExcludedNodes: []int{3},
	})
	assert.True(t, changed)
	assert.Equal(t, ptr.To(false), update.Enabled)
	assert.Equal(t, ptr.To([]int{3}), update.ExcludedNodes)
	assert.Nil(t, update.AllowedNodes)
	assert.Nil(t, update.Parameters)
}

func TestExpandAlertChannelSpecRejectsMismatchedParameters(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceAlertChannel().Schema, map[string]interface{}{
		"name": "ops-trap",
		"type": "snmp",
		"smtp_parameters": []interface{}{
			map[string]interface{}{
				"address":   []interface{}{"ops@example.com"},
				"smtp_host": "mail.example.com",
			},
		},
	})

	_, err := expandAlertChannelSpec(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp_parameters")
}

func TestResourceAlertChannelCreate(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodPost, client.ApiPath.EventChannels, http.StatusCreated, map[string]any{"id": 3})
	srv.JSON(http.MethodGet, client.ApiPath.EventChannelWithId("ops-mail"), http.StatusOK,
		GetAlertChannelResponse{Channels: []AlertChannelDto{smtpChannel()}})

	d := schema.TestResourceDataRaw(t, ResourceAlertChannel().Schema, map[string]interface{}{
		"name":          "ops-mail",
		"type":          "smtp",
		"allowed_nodes": []interface{}{2, 1},
		"smtp_parameters": []interface{}{
			map[string]interface{}{
				"address":   []interface{}{"ops@example.com", "oncall@example.com"},
				"smtp_host": "mail.example.com",
			},
		},
	})

	diags := resourceAlertChannelCreate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, "ops-mail", d.Id())
	assert.Equal(t, 3, d.Get("channel_id"))

	posts := srv.Requests(http.MethodPost, client.ApiPath.EventChannels)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"name": "ops-mail",
		"type": "smtp",
		"allowed_nodes": [1, 2],
		"parameters": {
			"address": ["oncall@example.com", "ops@example.com"],
			"smtp_host": "mail.example.com",
			"smtp_port": 25,
			"batch": "none"
		}
	}`, string(posts[0].Body))
}

func TestResourceAlertChannelUpdateNoop(t *testing.T) {
	srv := fakeonefs.New(t)
	srv.JSON(http.MethodGet, client.ApiPath.EventChannelWithId("ops-mail"), http.StatusOK,
		GetAlertChannelResponse{Channels: []AlertChannelDto{smtpChannel()}})

	d := schema.TestResourceDataRaw(t, ResourceAlertChannel().Schema, map[string]interface{}{
		"name":          "ops-mail",
		"type":          "smtp",
		"enabled":       true,
		"allowed_nodes": []interface{}{1, 2},
	})
	d.SetId("ops-mail")

	diags := resourceAlertChannelUpdate(context.Background(), d, srv.Meta(t))
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, srv.Writes())
}
