package alertsettings

var resourceDescriptions = map[string]string{
	"resource":             "Manages the cluster event settings. Destroying the resource clears the maintenance window.",
	"maintenance_start":    "Start of the maintenance window as a Unix timestamp. Alerts are suppressed during the window.",
	"maintenance_duration": "Length of the maintenance window in seconds.",
	"retention_days":       "Days resolved event groups are retained.",
	"storage_limit":        "Megabytes of event storage allowed per terabyte of cluster capacity.",
}
