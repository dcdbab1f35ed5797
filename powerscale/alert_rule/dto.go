package alertrule

type AlertConditionDto struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Condition     string   `json:"condition"`
	Channels      []string `json:"channels"`
	EventgroupIds []string `json:"eventgroup_ids"`
	Categories    []string `json:"categories"`
	Interval      int      `json:"interval"`
	Limit         int      `json:"limit"`
	Transient     int      `json:"transient"`
}

type GetAlertConditionResponse struct {
	AlertConditions []AlertConditionDto `json:"alert_conditions"`
}

type CreateAlertConditionRequest struct {
	Name          string   `json:"name"`
	Condition     string   `json:"condition"`
	Channels      []string `json:"channels"`
	EventgroupIds []string `json:"eventgroup_ids,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Interval      *int     `json:"interval,omitempty"`
	Limit         *int     `json:"limit,omitempty"`
	Transient     *int     `json:"transient,omitempty"`
}

type UpdateAlertConditionRequest struct {
	Condition     *string   `json:"condition,omitempty"`
	Channels      *[]string `json:"channels,omitempty"`
	EventgroupIds *[]string `json:"eventgroup_ids,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	Interval      *int      `json:"interval,omitempty"`
	Limit         *int      `json:"limit,omitempty"`
	Transient     *int      `json:"transient,omitempty"`
}

type AlertConditionSpec struct {
	Condition     string
	Channels      []string
	EventgroupIds []string
	Categories    []string
	Interval      *int
	Limit         *int
	Transient     *int
}
