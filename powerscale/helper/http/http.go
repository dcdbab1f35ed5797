package http

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/logging"
)

type transportOptions struct {
	httpProxy string
	timeout   time.Duration
	skipTls   bool
	logging   bool
}

type TransportOption func(*transportOptions)

func defaultTransport() *transportOptions {
	return &transportOptions{}
}

// NewHttpClient builds the http.Client used to talk to the OneFS API.
func NewHttpClient(ctx context.Context, opts ...TransportOption) (*http.Client, error) {
	reqOpt := defaultTransport()
	for _, option := range opts {
		option(reqOpt)
	}

	customTransport := http.DefaultTransport.(*http.Transport).Clone()

	if reqOpt.httpProxy != "" {
		proxyUrl, err := url.Parse(reqOpt.httpProxy)
		if err != nil {
			return nil, err
		}
		customTransport.Proxy = http.ProxyURL(proxyUrl)
	}

	if reqOpt.skipTls {
		tflog.Warn(ctx, "TLS certificate verification is disabled for the PowerScale endpoint")
		customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := &http.Client{
		Transport: customTransport,
		Timeout:   reqOpt.timeout,
	}

	if reqOpt.logging {
		client.Transport = logging.NewLoggingHTTPTransport(customTransport)
	}

	return client, nil
}

func WithTimeout(timeout time.Duration) TransportOption {
	return func(opt *transportOptions) {
		opt.timeout = timeout
	}
}

func WithHttpProxy(httpProxy string) TransportOption {
	return func(opt *transportOptions) {
		opt.httpProxy = httpProxy
	}
}

func WithSkipTls(skip bool) TransportOption {
	return func(opt *transportOptions) {
		opt.skipTls = skip
	}
}

// WithLogging dumps every request and response through the SDK logging
// transport. Only meant for TF_LOG=DEBUG or TRACE.
func WithLogging(enabled bool) TransportOption {
	return func(opt *transportOptions) {
		opt.logging = enabled
	}
}
