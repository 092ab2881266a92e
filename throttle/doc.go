// Package throttle provides an [http.RoundTripper] that paces outbound
// API calls with a token-bucket limiter from [golang.org/x/time/rate].
//
// ClouDNS meters API traffic per account, so the client installs this
// transport in front of every request. With a burst of 1 the limiter
// degenerates to a minimum-interval gate: two permitted calls are never
// closer together than 1/RPS seconds.
//
//	rt, err := throttle.NewRoundTripper(
//		20, // requests per second, the vendor allowance
//		1,  // burst capacity
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// Callers that exceed the rate block until a token becomes available or
// the request context is cancelled. The limiter itself never fails a
// request; only context cancellation does.
package throttle
