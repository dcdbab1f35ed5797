package alertchannel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"k8s.io/utils/ptr"

	"terraform-provider-powerscale/powerscale/helper/client"
	"terraform-provider-powerscale/powerscale/util"
)

const (
	ChannelTypeSmtp       = "smtp"
	ChannelTypeSnmp       = "snmp"
	ChannelTypeConnectEmc = "connectemc"
)

var (
	channelTypes = []string{ChannelTypeSmtp, ChannelTypeSnmp, ChannelTypeConnectEmc}
	batchModes   = []string{"none", "all", "category", "severity"}
)

func getAlertChannel(ctx context.Context, c *client.Client, name string) (*AlertChannelDto, error) {
	resp := &GetAlertChannelResponse{}
	if _, err := c.Get(ctx, client.ApiPath.EventChannelWithId(name), resp, nil); err != nil {
		return nil, err
	}

	if len(resp.Channels) == 0 {
		return nil, client.ErrUnexpectedResponseCode{
			URL:    client.ApiPath.EventChannelWithId(name),
			Method: http.MethodGet,
			Actual: http.StatusNotFound,
			Body:   []byte(fmt.Sprintf("alert channel %s not found", name)),
		}
	}

	return &resp.Channels[0], nil
}

func expandSmtpParameters(v interface{}) *ChannelParameters {
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 || list[0] == nil {
		return nil
	}

	m := list[0].(map[string]interface{})
	return &ChannelParameters{
		Address:  util.ExpandStringSet(m["address"]),
		SmtpHost: m["smtp_host"].(string),
		SmtpPort: m["smtp_port"].(int),
		SendAs:   m["send_as"].(string),
		Subject:  m["subject"].(string),
		Batch:    m["batch"].(string),
	}
}

func expandSnmpParameters(v interface{}) *ChannelParameters {
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 || list[0] == nil {
		return nil
	}

	m := list[0].(map[string]interface{})
	return &ChannelParameters{
		Host:      m["host"].(string),
		Community: m["community"].(string),
	}
}

func flattenSmtpParameters(p ChannelParameters) []interface{} {
	return []interface{}{map[string]interface{}{
		"address":   p.Address,
		"smtp_host": p.SmtpHost,
		"smtp_port": p.SmtpPort,
		"send_as":   p.SendAs,
		"subject":   p.Subject,
		"batch":     p.Batch,
	}}
}

func flattenSnmpParameters(p ChannelParameters) []interface{} {
	return []interface{}{map[string]interface{}{
		"host":      p.Host,
		"community": p.Community,
	}}
}

// expandAlertChannelSpec picks the parameter block matching the channel
// type and rejects a block configured for another type.
func expandAlertChannelSpec(d *schema.ResourceData) (AlertChannelSpec, error) {
	spec := AlertChannelSpec{}
	channelType := d.Get("type").(string)

	if v, ok := util.GetOkExists(d, "enabled"); ok {
		spec.Enabled = ptr.To(v.(bool))
	}

	if v, ok := d.GetOk("allowed_nodes"); ok {
		spec.AllowedNodes = util.ExpandIntSet(v)
	}

	if v, ok := d.GetOk("excluded_nodes"); ok {
		spec.ExcludedNodes = util.ExpandIntSet(v)
	}

	smtp := expandSmtpParameters(d.Get("smtp_parameters"))
	snmp := expandSnmpParameters(d.Get("snmp_parameters"))

	switch channelType {
	case ChannelTypeSmtp:
		if snmp != nil {
			return spec, fmt.Errorf("snmp_parameters cannot be set on an %s channel", channelType)
		}
		spec.Parameters = smtp
	case ChannelTypeSnmp:
		if smtp != nil {
			return spec, fmt.Errorf("smtp_parameters cannot be set on an %s channel", channelType)
		}
		spec.Parameters = snmp
	default:
		if smtp != nil || snmp != nil {
			return spec, fmt.Errorf("%s channels take no parameters", channelType)
		}
	}

	return spec, nil
}

func parametersEqual(a, b ChannelParameters) bool {
	return util.StringSetsEqual(a.Address, b.Address) &&
		a.SmtpHost == b.SmtpHost &&
		a.SmtpPort == b.SmtpPort &&
		a.SendAs == b.SendAs &&
		a.Subject == b.Subject &&
		a.Batch == b.Batch &&
		a.Host == b.Host &&
		a.Community == b.Community
}

func buildAlertChannelUpdate(current AlertChannelDto, desired AlertChannelSpec) (UpdateAlertChannelRequest, bool) {
	update := UpdateAlertChannelRequest{}
	changed := false

	if desired.Enabled != nil && *desired.Enabled != current.Enabled {
		update.Enabled = desired.Enabled
		changed = true
	}

	if desired.AllowedNodes != nil && !util.IntSetsEqual(desired.AllowedNodes, current.AllowedNodes) {
		update.AllowedNodes = ptr.To(desired.AllowedNodes)
		changed = true
	}

	if desired.ExcludedNodes != nil && !util.IntSetsEqual(desired.ExcludedNodes, current.ExcludedNodes) {
		update.ExcludedNodes = ptr.To(desired.ExcludedNodes)
		changed = true
	}

	if desired.Parameters != nil && !parametersEqual(*desired.Parameters, current.Parameters) {
		update.Parameters = desired.Parameters
		changed = true
	}

	return update, changed
}
