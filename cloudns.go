package cloudns

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/gocloudns/cloudns/throttle"
)

const (
	// DefaultBaseURL is the vendor API root. Every operation appends its
	// relative endpoint, e.g. login/login.json or dns/records.json.
	DefaultBaseURL = "https://api.cloudns.net"

	// DefaultRateLimit is the vendor's allowed request rate per second.
	DefaultRateLimit = 20
)

// Client issues authenticated calls against the ClouDNS API.
// Credentials are fixed at construction and decorate every outgoing
// parameter set. All traffic funnels through [Client.Call], whose
// transport chain paces requests to the configured rate.
type Client struct {
	c       *http.Client
	baseURL *url.URL
	logger  *slog.Logger
	tracer  trace.Tracer

	authID       string
	authPassword string
}

// Build instantiates a *Client with the provided credentials and options.
// Unless overridden, the client owns its own *http.Client, throttled to
// [DefaultRateLimit] with a burst of 1 so consecutive calls are spaced
// at least 1/rate apart.
func Build(authID, authPassword string, optFns ...Option) (*Client, error) {
	client := &Client{
		c:            &http.Client{Timeout: 30 * time.Second},
		logger:       slog.Default(),
		authID:       authID,
		authPassword: authPassword,
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	client.tracer = opts.tracer
	if client.tracer == nil {
		client.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	client.baseURL = opts.baseURL
	if client.baseURL == nil {
		u, err := url.Parse(DefaultBaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base url: %w", err)
		}
		client.baseURL = u
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	transport = requestID{base: transport}
	if !opts.noThrottle {
		cfg := throttle.Config{RPS: DefaultRateLimit, Burst: 1}
		if opts.throttle != nil {
			cfg = *opts.throttle
		}

		rt, err := throttle.NewRoundTripper(cfg.RPS, cfg.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}
