package snapshot

import "terraform-provider-powerscale/powerscale/helper/client"

type SnapshotDto struct {
	ID      client.FlexibleID `json:"id"`
	Name    string            `json:"name"`
	Path    string            `json:"path"`
	Alias   string            `json:"alias"`
	Expires *int64            `json:"expires"`
	Created int64             `json:"created"`
	Size    int64             `json:"size"`
	State   string            `json:"state"`
}

type GetSnapshotResponse struct {
	Snapshots []SnapshotDto `json:"snapshots"`
}

type CreateSnapshotRequest struct {
	Path    string `json:"path"`
	Name    string `json:"name,omitempty"`
	Alias   string `json:"alias,omitempty"`
	Expires *int64 `json:"expires,omitempty"`
}

type UpdateSnapshotRequest struct {
	Name    *string `json:"name,omitempty"`
	Alias   *string `json:"alias,omitempty"`
	Expires *int64  `json:"expires,omitempty"`
}

type SnapshotSpec struct {
	Name    string
	Alias   *string
	Expires *int64
}
