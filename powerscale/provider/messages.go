package provider

var attrErrorSummaryMsg = map[string]string{
	"unknown_endpoint": "Unknown PowerScale Endpoint",

	"unknown_username": "Unknown PowerScale Username",

	"unknown_password": "Unknown PowerScale Password",

	"missing_endpoint": "Missing PowerScale Endpoint",

	"missing_username": "Missing PowerScale Username",

	"missing_password": "Missing PowerScale Password",
}

var attrErrorDetailMsg = map[string]string{
	"unknown_endpoint": "The provider cannot create the PowerScale API client as there is an unknown configuration value for the PowerScale endpoint. " +
		"Either target apply the source of the value first, set the value statically in the configuration, or use the POWERSCALE_ENDPOINT environment variable.",

	"unknown_username": "The provider cannot create the PowerScale API client as there is an unknown configuration value for the PowerScale username. " +
		"Either target apply the source of the value first, set the value statically in the configuration, or use the POWERSCALE_USERNAME environment variable.",

	"unknown_password": "The provider cannot create the PowerScale API client as there is an unknown configuration value for the PowerScale password. " +
		"Either target apply the source of the value first, set the value statically in the configuration, or use the POWERSCALE_PASSWORD environment variable.",

	"missing_endpoint": "The provider cannot create the PowerScale API client as there is a missing or empty value for the PowerScale endpoint. " +
		"Set the value in the configuration, use the POWERSCALE_ENDPOINT environment variable, or point config_file at a cluster profile.",

	"missing_username": "The provider cannot create the PowerScale API client as there is a missing or empty value for the PowerScale username. " +
		"Set the value in the configuration, use the POWERSCALE_USERNAME environment variable, or point config_file at a cluster profile.",

	"missing_password": "The provider cannot create the PowerScale API client as there is a missing or empty value for the PowerScale password. " +
		"Set the value in the configuration, use the POWERSCALE_PASSWORD environment variable, or point config_file at a cluster profile.",
}
