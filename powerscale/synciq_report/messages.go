package synciqreport

var datasourceDescriptions = map[string]string{
	"source_datasource": "Use this data source to list the SyncIQ reports of policies running on this cluster.",
	"target_datasource": "Use this data source to list the SyncIQ reports of policies replicating to this cluster.",
	"policy_name":       "Only return reports of this policy.",
	"newer_than":        "Only return reports of jobs started within this many days.",
	"reports":           "The matching reports.",
	"report_id":         "The report ID.",
	"state":             "The state the job ended in.",
	"start_time":        "Unix timestamp the job started at.",
	"end_time":          "Unix timestamp the job ended at.",
	"duration":          "Seconds the job ran for.",
	"errors":            "Errors the job reported.",
	"total_files":       "Number of files the job processed.",
	"bytes_transferred": "Number of bytes the job transferred.",
}
