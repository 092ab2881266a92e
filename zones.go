package cloudns

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterZoneOptions are the optional fields for [Client.RegisterZone].
// NS lists the name servers to assign, sent as repeated ns[] keys in
// the given order. MasterIP applies to slave zones only.
type RegisterZoneOptions struct {
	NS       []string
	MasterIP string
}

// RegisterZone creates a new zone of the given type (master, slave,
// parked or geodns).
func (c *Client) RegisterZone(ctx context.Context, domainName, zoneType string, opts RegisterZoneOptions) (*StatusResult, error) {
	params := NewParams().
		Add("domain-name", domainName).
		Add("zone-type", zoneType)
	for _, ns := range opts.NS {
		params.Add("ns[]", ns)
	}
	params.Add("master-ip", opts.MasterIP)

	var out StatusResult
	if err := c.Call(ctx, "dns/register.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("register zone %s: %w", domainName, err)
	}

	return &out, nil
}

// DeleteZone removes a zone and all of its records.
func (c *Client) DeleteZone(ctx context.Context, domainName string) (*StatusResult, error) {
	params := NewParams().Add("domain-name", domainName)

	var out StatusResult
	if err := c.Call(ctx, "dns/delete.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("delete zone %s: %w", domainName, err)
	}

	return &out, nil
}

// ListZonesOptions filter and page [Client.ListZones]. Zero values are
// unset; Page and RowsPerPage fall back to 1 and 20.
type ListZonesOptions struct {
	Page            int
	RowsPerPage     int
	Search          string
	GroupID         int64
	HasCloudDomains *bool
}

// ListZones returns one page of the account's zones.
func (c *Client) ListZones(ctx context.Context, opts ListZonesOptions) ([]Zone, error) {
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.RowsPerPage == 0 {
		opts.RowsPerPage = 20
	}

	params := NewParams().
		AddInt("page", int64(opts.Page)).
		AddInt("rows-per-page", int64(opts.RowsPerPage)).
		Add("search", opts.Search).
		AddInt("group-id", opts.GroupID)
	if opts.HasCloudDomains != nil {
		params.AddBool("has-cloud-domains", *opts.HasCloudDomains)
	}

	var out []Zone
	if err := c.Call(ctx, "dns/list-zones.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	return out, nil
}

// PagesCountOptions mirror the list-zones filters; RowsPerPage falls
// back to 10, matching the vendor default for this endpoint.
type PagesCountOptions struct {
	RowsPerPage     int
	Search          string
	GroupID         int64
	HasCloudDomains *bool
}

// PagesCount reports how many pages [Client.ListZones] would yield
// under the same filters.
func (c *Client) PagesCount(ctx context.Context, opts PagesCountOptions) (int, error) {
	if opts.RowsPerPage == 0 {
		opts.RowsPerPage = 10
	}

	params := NewParams().
		AddInt("rows-per-page", int64(opts.RowsPerPage)).
		Add("search", opts.Search).
		AddInt("group-id", opts.GroupID)
	if opts.HasCloudDomains != nil {
		params.AddBool("has-cloud-domains", *opts.HasCloudDomains)
	}

	var out int
	if err := c.Call(ctx, "dns/get-pages-count.json", http.MethodGet, params, &out); err != nil {
		return 0, fmt.Errorf("get pages count: %w", err)
	}

	return out, nil
}

// ZonesStats reports the account's zone count against its plan limit.
func (c *Client) ZonesStats(ctx context.Context) (*UsageStats, error) {
	var out UsageStats
	if err := c.Call(ctx, "dns/get-zones-stats.json", http.MethodGet, nil, &out); err != nil {
		return nil, fmt.Errorf("get zones stats: %w", err)
	}

	return &out, nil
}

// ZoneInfo returns a single zone's configuration.
func (c *Client) ZoneInfo(ctx context.Context, domainName string) (*Zone, error) {
	params := NewParams().Add("domain-name", domainName)

	var out Zone
	if err := c.Call(ctx, "dns/get-zone-info.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("get zone info %s: %w", domainName, err)
	}

	return &out, nil
}

// UpdateZone triggers a push of the zone to all of the vendor's name
// servers.
func (c *Client) UpdateZone(ctx context.Context, domainName string) (*StatusResult, error) {
	params := NewParams().Add("domain-name", domainName)

	var out StatusResult
	if err := c.Call(ctx, "dns/update-zone.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("update zone %s: %w", domainName, err)
	}

	return &out, nil
}

// UpdateStatus reports per-name-server propagation state for a zone.
func (c *Client) UpdateStatus(ctx context.Context, domainName string) ([]ServerUpdateStatus, error) {
	params := NewParams().Add("domain-name", domainName)

	var out []ServerUpdateStatus
	if err := c.Call(ctx, "dns/update-status.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("get update status %s: %w", domainName, err)
	}

	return out, nil
}

// IsUpdated reports whether the zone has fully propagated to all name
// servers.
func (c *Client) IsUpdated(ctx context.Context, domainName string) (bool, error) {
	params := NewParams().Add("domain-name", domainName)

	var out bool
	if err := c.Call(ctx, "dns/is-updated.json", http.MethodGet, params, &out); err != nil {
		return false, fmt.Errorf("is updated %s: %w", domainName, err)
	}

	return out, nil
}

// ChangeZoneStatus activates or deactivates a zone. A nil status omits
// the parameter, which the vendor treats as a toggle.
func (c *Client) ChangeZoneStatus(ctx context.Context, domainName string, status *bool) (*StatusResult, error) {
	params := NewParams().Add("domain-name", domainName)
	if status != nil {
		params.AddBool("status", *status)
	}

	var out StatusResult
	if err := c.Call(ctx, "dns/change-status.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("change zone status %s: %w", domainName, err)
	}

	return &out, nil
}
