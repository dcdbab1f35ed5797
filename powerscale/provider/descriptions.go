package provider

import "terraform-provider-powerscale/powerscale"

// Both halves of the provider share one set of attribute descriptions.
var descriptions = powerscale.Descriptions
