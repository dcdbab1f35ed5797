package quota

import "terraform-provider-powerscale/powerscale/helper/client"

type Thresholds struct {
	Hard      *int64 `json:"hard,omitempty"`
	Soft      *int64 `json:"soft,omitempty"`
	Advisory  *int64 `json:"advisory,omitempty"`
	SoftGrace *int   `json:"soft_grace,omitempty"`
}

type Usage struct {
	Logical  int64 `json:"logical"`
	Physical int64 `json:"physical"`
	Inodes   int64 `json:"inodes"`
}

type QuotaDto struct {
	ID                        string          `json:"id"`
	Path                      string          `json:"path"`
	Type                      string          `json:"type"`
	Persona                   *client.Persona `json:"persona"`
	IncludeSnapshots          bool            `json:"include_snapshots"`
	ThresholdsIncludeOverhead bool            `json:"thresholds_include_overhead"`
	Enforced                  bool            `json:"enforced"`
	Container                 bool            `json:"container"`
	Thresholds                Thresholds      `json:"thresholds"`
	Usage                     Usage           `json:"usage"`
}

type GetQuotaResponse struct {
	Quotas []QuotaDto `json:"quotas"`
}

type QuotaQuery struct {
	Zone string `q:"zone"`
}

type CreateQuotaRequest struct {
	Path                      string          `json:"path"`
	Type                      string          `json:"type"`
	Persona                   *client.Persona `json:"persona,omitempty"`
	IncludeSnapshots          bool            `json:"include_snapshots"`
	ThresholdsIncludeOverhead *bool           `json:"thresholds_include_overhead,omitempty"`
	Enforced                  *bool           `json:"enforced,omitempty"`
	Container                 *bool           `json:"container,omitempty"`
	Thresholds                *Thresholds     `json:"thresholds,omitempty"`
}

type UpdateQuotaRequest struct {
	ThresholdsIncludeOverhead *bool       `json:"thresholds_include_overhead,omitempty"`
	Enforced                  *bool       `json:"enforced,omitempty"`
	Container                 *bool       `json:"container,omitempty"`
	Thresholds                *Thresholds `json:"thresholds,omitempty"`
}

// QuotaSpec holds limits already converted to bytes from Unit.
type QuotaSpec struct {
	Unit                      string
	ThresholdsIncludeOverhead *bool
	Enforced                  *bool
	Container                 *bool
	Thresholds                Thresholds
}
