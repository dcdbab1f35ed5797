package synciqreport

type SyncReportDto struct {
	ID               string   `json:"id"`
	PolicyName       string   `json:"policy_name"`
	State            string   `json:"state"`
	StartTime        int64    `json:"start_time"`
	EndTime          int64    `json:"end_time"`
	Duration         int64    `json:"duration"`
	Errors           []string `json:"errors"`
	TotalFiles       int64    `json:"total_files"`
	BytesTransferred int64    `json:"bytes_transferred"`
}

type ListSyncReportsResponse struct {
	Reports []SyncReportDto `json:"reports"`
	Resume  string          `json:"resume"`
	Total   int             `json:"total"`
}

type SyncReportQuery struct {
	PolicyName string `q:"policy_name"`
	NewerThan  int64  `q:"newer_than"`
	Resume     string `q:"resume"`
}
