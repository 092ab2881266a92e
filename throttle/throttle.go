package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// Config defines the allowed outbound request rate.
// A Burst of 1 enforces a strict minimum interval of 1/RPS
// between consecutive calls.
type Config struct {
	RPS   int
	Burst int
}

// gate is an http.RoundTripper that blocks each outbound request
// until the token bucket grants it a slot. All calls sharing one
// gate are serialized through the limiter's internal lock, so
// concurrent callers cannot slip under the minimum interval.
type gate struct {
	limiter *rate.Limiter
	cfg     Config
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper wraps next with a token-bucket limiter allowing rps
// requests per second with the given burst capacity. logFn resolves the
// logger lazily at request time, making option ordering irrelevant; a
// nil-returning logFn silences wait logging.
func NewRoundTripper(rps, burst int, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	g := &gate{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		cfg:     Config{RPS: rps, Burst: burst},
		next:    next,
		logFn:   logFn,
	}

	return g, nil
}

func (g *gate) RoundTrip(r *http.Request) (*http.Response, error) {
	if g.limiter == nil {
		return g.next.RoundTrip(r)
	}

	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	// Tokens is a probe, not a reservation: it must not consume a
	// token, or the log path itself would halve the effective rate.
	var waited time.Duration
	logger := g.logFn()
	if logger != nil && g.limiter.Tokens() < 1 {
		logger.Info("rate limit reached, pacing request",
			"rps", g.cfg.RPS, "burst", g.cfg.Burst, "endpoint", r.URL.Path)

		defer func() {
			logger.Info("pacing complete", "waited", waited.String(), "endpoint", r.URL.Path)
		}()
	}

	start := time.Now()

	err := g.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return g.next.RoundTrip(r)
}
