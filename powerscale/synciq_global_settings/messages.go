package synciqglobalsettings

var resourceDescriptions = map[string]string{
	"resource":            "Manages the cluster-wide SyncIQ settings. Destroying the resource only removes it from state.",
	"service":             "State of the SyncIQ service: on, off or paused.",
	"encryption_required": "Require encrypted SyncIQ connections.",
	"report_max_age":      "Seconds a SyncIQ report is kept.",
	"report_max_count":    "Maximum number of reports kept per policy.",
	"force_interface":     "Restrict replication traffic to the pool interfaces of the policy.",
}
