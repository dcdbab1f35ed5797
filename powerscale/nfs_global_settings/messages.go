package nfsglobalsettings

var resourceDescriptions = map[string]string{
	"resource":         "Manages the cluster-wide NFS settings. Destroying the resource only removes it from state.",
	"service":          "Whether the NFS service is enabled.",
	"nfsv3_enabled":    "Whether NFSv3 is enabled.",
	"nfsv4_enabled":    "Whether NFSv4 is enabled.",
	"rpc_maxthreads":   "The maximum number of threads in the nfsd thread pool.",
	"rpc_minthreads":   "The minimum number of threads in the nfsd thread pool.",
	"nfs_rdma_enabled": "Whether NFS over RDMA is enabled.",
}
