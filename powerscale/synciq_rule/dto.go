package synciqrule

type RuleSchedule struct {
	Begin      string   `json:"begin"`
	End        string   `json:"end"`
	DaysOfWeek []string `json:"days_of_week"`
}

type SyncRuleDto struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Limit       int           `json:"limit"`
	Enabled     bool          `json:"enabled"`
	Description string        `json:"description"`
	Schedule    *RuleSchedule `json:"schedule"`
}

type GetSyncRuleResponse struct {
	Rules []SyncRuleDto `json:"rules"`
}

type CreateSyncRuleRequest struct {
	Type        string        `json:"type"`
	Limit       int           `json:"limit"`
	Enabled     *bool         `json:"enabled,omitempty"`
	Description string        `json:"description,omitempty"`
	Schedule    *RuleSchedule `json:"schedule,omitempty"`
}

type UpdateSyncRuleRequest struct {
	Limit       *int          `json:"limit,omitempty"`
	Enabled     *bool         `json:"enabled,omitempty"`
	Description *string       `json:"description,omitempty"`
	Schedule    *RuleSchedule `json:"schedule,omitempty"`
}

type SyncRuleSpec struct {
	Limit       int
	Enabled     *bool
	Description *string
	Schedule    *RuleSchedule
}
