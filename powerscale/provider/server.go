package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/hashicorp/terraform-plugin-mux/tf5to6server"
	"github.com/hashicorp/terraform-plugin-mux/tf6muxserver"

	"terraform-provider-powerscale/powerscale"
)

// MuxServerFactory serves the SDKv2 resources, upgraded to protocol 6, and
// the framework resources behind a single provider server.
func MuxServerFactory(ctx context.Context, version string) (func() tfprotov6.ProviderServer, error) {
	upgradedSdkServer, err := tf5to6server.UpgradeServer(ctx, powerscale.Provider().GRPCProvider)
	if err != nil {
		return nil, err
	}

	providers := []func() tfprotov6.ProviderServer{
		func() tfprotov6.ProviderServer {
			return upgradedSdkServer
		},
		providerserver.NewProtocol6(New(version)()),
	}

	muxServer, err := tf6muxserver.NewMuxServer(ctx, providers...)
	if err != nil {
		return nil, err
	}

	return muxServer.ProviderServer, nil
}
