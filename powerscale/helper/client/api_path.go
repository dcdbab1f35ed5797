package client

import (
	"fmt"
	"net/url"
)

var ApiPath = struct {
	Session                   string
	ClusterConfig             string
	Zones                     string
	ZoneWithId                func(name string) string
	Groupnets                 string
	GroupnetWithId            func(name string) string
	NetworkPools              func(groupnet, subnet string) string
	NetworkPoolWithId         func(groupnet, subnet, pool string) string
	NfsExports                string
	NfsExportWithId           func(id int) string
	NfsGlobalSettings         string
	SmbShares                 string
	SmbShareWithId            func(name string) string
	SmbGlobalSettings         string
	Quotas                    string
	QuotaWithId               func(id string) string
	Snapshots                 string
	SnapshotWithId            func(id string) string
	SyncPolicies              string
	SyncPolicyWithId          func(id string) string
	SyncRules                 string
	SyncRuleWithId            func(id string) string
	SyncJobs                  string
	SyncJobWithId             func(id string) string
	SyncReports               string
	SyncTargetReports         string
	SyncSettings              string
	SyncPeerCertificates      string
	SyncPeerCertificateWithId func(id string) string
	ServerCertificates        string
	ServerCertificateWithId   func(id string) string
	CertificateSettings       string
	EventChannels             string
	EventChannelWithId        func(id string) string
	EventAlertConditions      string
	EventAlertConditionWithId func(id string) string
	EventSettings             string
	S3KeysWithUser            func(user string) string
	ListWithQuery             func(path string, params any) string
}{
	Session:       "/session/1/session",
	ClusterConfig: "/platform/1/cluster/config",
	Zones:         "/platform/3/zones",
	ZoneWithId: func(name string) string {
		return fmt.Sprintf("/platform/3/zones/%s", url.PathEscape(name))
	},
	Groupnets: "/platform/3/network/groupnets",
	GroupnetWithId: func(name string) string {
		return fmt.Sprintf("/platform/3/network/groupnets/%s", url.PathEscape(name))
	},
	NetworkPools: func(groupnet, subnet string) string {
		return fmt.Sprintf("/platform/3/network/groupnets/%s/subnets/%s/pools",
			url.PathEscape(groupnet), url.PathEscape(subnet))
	},
	NetworkPoolWithId: func(groupnet, subnet, pool string) string {
		return fmt.Sprintf("/platform/3/network/groupnets/%s/subnets/%s/pools/%s",
			url.PathEscape(groupnet), url.PathEscape(subnet), url.PathEscape(pool))
	},
	NfsExports: "/platform/4/protocols/nfs/exports",
	NfsExportWithId: func(id int) string {
		return fmt.Sprintf("/platform/4/protocols/nfs/exports/%d", id)
	},
	NfsGlobalSettings: "/platform/3/protocols/nfs/settings/global",
	SmbShares:         "/platform/7/protocols/smb/shares",
	SmbShareWithId: func(name string) string {
		return fmt.Sprintf("/platform/7/protocols/smb/shares/%s", url.PathEscape(name))
	},
	SmbGlobalSettings: "/platform/6/protocols/smb/settings/global",
	Quotas:            "/platform/1/quota/quotas",
	QuotaWithId: func(id string) string {
		return fmt.Sprintf("/platform/1/quota/quotas/%s", url.PathEscape(id))
	},
	Snapshots: "/platform/1/snapshot/snapshots",
	SnapshotWithId: func(id string) string {
		return fmt.Sprintf("/platform/1/snapshot/snapshots/%s", url.PathEscape(id))
	},
	SyncPolicies: "/platform/14/sync/policies",
	SyncPolicyWithId: func(id string) string {
		return fmt.Sprintf("/platform/14/sync/policies/%s", url.PathEscape(id))
	},
	SyncRules: "/platform/3/sync/rules",
	SyncRuleWithId: func(id string) string {
		return fmt.Sprintf("/platform/3/sync/rules/%s", url.PathEscape(id))
	},
	SyncJobs: "/platform/3/sync/jobs",
	SyncJobWithId: func(id string) string {
		return fmt.Sprintf("/platform/3/sync/jobs/%s", url.PathEscape(id))
	},
	SyncReports:          "/platform/3/sync/reports",
	SyncTargetReports:    "/platform/3/sync/target/reports",
	SyncSettings:         "/platform/14/sync/settings",
	SyncPeerCertificates: "/platform/7/sync/certificates/peer",
	SyncPeerCertificateWithId: func(id string) string {
		return fmt.Sprintf("/platform/7/sync/certificates/peer/%s", url.PathEscape(id))
	},
	ServerCertificates: "/platform/10/certificate/server",
	ServerCertificateWithId: func(id string) string {
		return fmt.Sprintf("/platform/10/certificate/server/%s", url.PathEscape(id))
	},
	CertificateSettings: "/platform/10/certificate/settings",
	EventChannels:       "/platform/11/event/channels",
	EventChannelWithId: func(id string) string {
		return fmt.Sprintf("/platform/11/event/channels/%s", url.PathEscape(id))
	},
	EventAlertConditions: "/platform/11/event/alert-conditions",
	EventAlertConditionWithId: func(id string) string {
		return fmt.Sprintf("/platform/11/event/alert-conditions/%s", url.PathEscape(id))
	},
	EventSettings: "/platform/11/event/settings",
	S3KeysWithUser: func(user string) string {
		return fmt.Sprintf("/platform/10/protocols/s3/keys/%s", url.PathEscape(user))
	},
	ListWithQuery: func(path string, params any) string {
		query, err := BuildQueryString(params)
		if err != nil || query.RawQuery == "" {
			return path
		}
		return path + "?" + query.RawQuery
	},
}
