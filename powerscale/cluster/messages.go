package cluster

var datasourceDescriptions = map[string]string{
	"datasource":    "Use this data source to read the identity of the PowerScale cluster the provider is connected to.",
	"name":          "The cluster name.",
	"description":   "The cluster description.",
	"guid":          "The cluster GUID.",
	"onefs_release": "The OneFS release, for example 9.5.0.0.",
	"onefs_build":   "The OneFS build string.",
	"node_count":    "The number of nodes in the cluster.",
	"local_lnn":     "The logical node number of the node serving the API.",
}
