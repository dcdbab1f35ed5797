package nfsglobalsettings

type NfsGlobalSettingsDto struct {
	Service        bool  `json:"service"`
	Nfsv3Enabled   bool  `json:"nfsv3_enabled"`
	Nfsv4Enabled   bool  `json:"nfsv4_enabled"`
	RpcMaxthreads  int64 `json:"rpc_maxthreads"`
	RpcMinthreads  int64 `json:"rpc_minthreads"`
	NfsRdmaEnabled bool  `json:"nfs_rdma_enabled"`
}

type GetNfsGlobalSettingsResponse struct {
	Settings NfsGlobalSettingsDto `json:"settings"`
}

type UpdateNfsGlobalSettingsRequest struct {
	Service        *bool  `json:"service,omitempty"`
	Nfsv3Enabled   *bool  `json:"nfsv3_enabled,omitempty"`
	Nfsv4Enabled   *bool  `json:"nfsv4_enabled,omitempty"`
	RpcMaxthreads  *int64 `json:"rpc_maxthreads,omitempty"`
	RpcMinthreads  *int64 `json:"rpc_minthreads,omitempty"`
	NfsRdmaEnabled *bool  `json:"nfs_rdma_enabled,omitempty"`
}
