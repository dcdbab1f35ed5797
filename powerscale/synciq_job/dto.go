package synciqjob

type SyncJobDto struct {
	ID               string `json:"id"`
	PolicyName       string `json:"policy_name"`
	Action           string `json:"action"`
	State            string `json:"state"`
	StartTime        int64  `json:"start_time"`
	Duration         int64  `json:"duration"`
	FilesTransferred int64  `json:"files_transferred"`
	BytesTransferred int64  `json:"bytes_transferred"`
}

type GetSyncJobResponse struct {
	Jobs []SyncJobDto `json:"jobs"`
}

type CreateSyncJobRequest struct {
	ID     string `json:"id"`
	Action string `json:"action,omitempty"`
}

type UpdateSyncJobRequest struct {
	State string `json:"state"`
}
