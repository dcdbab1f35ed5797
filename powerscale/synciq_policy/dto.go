package synciqpolicy

type SyncPolicyDto struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Action                   string   `json:"action"`
	SourceRootPath           string   `json:"source_root_path"`
	TargetHost               string   `json:"target_host"`
	TargetPath               string   `json:"target_path"`
	Description              string   `json:"description"`
	Enabled                  bool     `json:"enabled"`
	Schedule                 string   `json:"schedule"`
	JobDelay                 int      `json:"job_delay"`
	SourceIncludeDirectories []string `json:"source_include_directories"`
	SourceExcludeDirectories []string `json:"source_exclude_directories"`
	TargetSnapshotArchive    bool     `json:"target_snapshot_archive"`
	TargetCertificateID      string   `json:"target_certificate_id"`
	LastJobState             string   `json:"last_job_state"`
}

type GetSyncPolicyResponse struct {
	Policies []SyncPolicyDto `json:"policies"`
}

type CreateSyncPolicyRequest struct {
	Name                     string   `json:"name"`
	Action                   string   `json:"action"`
	SourceRootPath           string   `json:"source_root_path"`
	TargetHost               string   `json:"target_host"`
	TargetPath               string   `json:"target_path"`
	Description              string   `json:"description,omitempty"`
	Enabled                  *bool    `json:"enabled,omitempty"`
	Schedule                 string   `json:"schedule,omitempty"`
	JobDelay                 *int     `json:"job_delay,omitempty"`
	SourceIncludeDirectories []string `json:"source_include_directories,omitempty"`
	SourceExcludeDirectories []string `json:"source_exclude_directories,omitempty"`
	TargetSnapshotArchive    *bool    `json:"target_snapshot_archive,omitempty"`
	TargetCertificateID      string   `json:"target_certificate_id,omitempty"`
}

type UpdateSyncPolicyRequest struct {
	Name                     *string   `json:"name,omitempty"`
	Action                   *string   `json:"action,omitempty"`
	SourceRootPath           *string   `json:"source_root_path,omitempty"`
	TargetHost               *string   `json:"target_host,omitempty"`
	TargetPath               *string   `json:"target_path,omitempty"`
	Description              *string   `json:"description,omitempty"`
	Enabled                  *bool     `json:"enabled,omitempty"`
	Schedule                 *string   `json:"schedule,omitempty"`
	JobDelay                 *int      `json:"job_delay,omitempty"`
	SourceIncludeDirectories *[]string `json:"source_include_directories,omitempty"`
	SourceExcludeDirectories *[]string `json:"source_exclude_directories,omitempty"`
	TargetSnapshotArchive    *bool     `json:"target_snapshot_archive,omitempty"`
	TargetCertificateID      *string   `json:"target_certificate_id,omitempty"`
}

type SyncPolicySpec struct {
	Name                     string
	Action                   string
	SourceRootPath           string
	TargetHost               string
	TargetPath               string
	Description              *string
	Enabled                  *bool
	Schedule                 *string
	JobDelay                 *int
	SourceIncludeDirectories []string
	SourceExcludeDirectories []string
	TargetSnapshotArchive    *bool
	TargetCertificateID      *string
}
