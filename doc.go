// Package cloudns is a client for the ClouDNS DNS-management HTTP API:
// authentication, zone management, record management, and a built-in
// rate limiter that keeps callers inside the vendor's allowed request
// rate of 20 calls per second.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := cloudns.Build("1234", "password",
//		cloudns.WithTimeout(10*time.Second),
//		cloudns.WithUserAgent("myapp/1.0"),
//	)
//
// Credentials are immutable after construction and attached to every
// outgoing call as the auth-id and auth-password parameters.
//
// # Managing Zones and Records
//
// Each API operation is a method on [Client]:
//
//	zones, err := c.ListZones(ctx, cloudns.ListZonesOptions{Search: "example"})
//	res, err := c.AddRecord(ctx, cloudns.RecordSettings{
//		DomainName: "example.com",
//		RecordType: "A",
//		Record:     "203.0.113.7",
//		Host:       "www",
//		TTL:        3600,
//	})
//
// Record create/modify input is validated locally before any network
// access; invalid input fails with an error matching
// [ErrInvalidArgument]. A non-200 reply from the vendor fails with an
// [*APIError] carrying the decoded error body.
//
// # Endpoints Without a Method
//
// [Client.Call] is the single dispatch point every operation funnels
// through, and is exported for vendor endpoints this package has no
// wrapper for:
//
//	var out map[string]any
//	err := c.Call(ctx, "dns/get-zone-info.json", http.MethodGet,
//		cloudns.NewParams().Add("domain-name", "example.com"), &out)
//
// # Rate Limiting
//
// Outbound calls pass through the
// [github.com/gocloudns/cloudns/throttle] transport, configured to the
// vendor allowance by default. See [WithRateLimit] and
// [WithoutRateLimit].
package cloudns
