package cloudns

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/gocloudns/cloudns/throttle"
)

// Option defines optional settings for the client.
//
// WithLogger injects a custom logger into the client.
// WithUserAgent adds a persistent `User-Agent` header to all
// outgoing requests on the client.
type Option func(*options) error

type options struct {
	client     *http.Client
	rt         http.RoundTripper
	timeout    *time.Duration
	userAgent  string
	throttle   *throttle.Config
	noThrottle bool
	baseURL    *url.URL
	logger     *slog.Logger
	tracer     trace.Tracer
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithRateLimit overrides the default outbound pacing of
// [DefaultRateLimit] requests per second with a burst of 1. Bursts
// above 1 allow calls closer together than 1/rps; the vendor allowance
// is an average, so short bursts are acceptable to it.
func WithRateLimit(rps, burst int) Option {
	return func(o *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, throttle.ErrMustNotBeZero)
		}
		o.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithoutRateLimit removes the throttle entirely. Intended for tests
// against local doubles; running unthrottled against the live API
// invites vendor-side rejection.
func WithoutRateLimit() Option {
	return func(o *options) error {
		o.noThrottle = true
		return nil
	}
}

// WithBaseURL points the client at a different API root, usually a
// test double.
func WithBaseURL(raw string) Option {
	return func(o *options) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q missing scheme or host", raw)
		}
		o.baseURL = u
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

// requestID stamps each outgoing request with a fresh X-Request-Id so
// individual API calls can be correlated in logs and traces.
type requestID struct {
	base http.RoundTripper
}

func (ri requestID) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("X-Request-Id", uuid.NewString())
	return ri.base.RoundTrip(cpy)
}
