package cloudns

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
)

// RecordSettings describes a record to create or modify. Named fields
// cover the common vendor parameters; Extra carries vendor-specific
// ones (priority, weight, port, geodns-location, ...). Extra is merged
// after the named fields, so an Extra key matching a named field's
// wire key overrides it.
//
// TTL must be one of the vendor's accepted values; anything else is
// rejected locally before any network access.
type RecordSettings struct {
	DomainName string            `json:"domain-name" validate:"required"`
	RecordType string            `json:"record-type" validate:"required"`
	Record     string            `json:"record" validate:"required"`
	Host       string            `json:"host"`
	TTL        int               `json:"ttl" validate:"required,oneof=60 300 900 1800 3600 21600 43200 86400 172800 259200 604800 1209600 2592000"`
	Extra      map[string]string `json:"-"`
}

// params flattens the settings into one wire parameter set. Extra keys
// are applied in sorted order so the merge is deterministic.
func (rs RecordSettings) params(recordID int64, includeType bool) *Params {
	p := NewParams().
		Add("domain-name", rs.DomainName).
		AddInt("record-id", recordID)
	if includeType {
		p.Add("record-type", rs.RecordType)
	}
	p.Add("host", rs.Host).
		Add("record", rs.Record).
		AddInt("ttl", int64(rs.TTL))

	for _, k := range slices.Sorted(maps.Keys(rs.Extra)) {
		p.Set(k, rs.Extra[k])
	}

	return p
}

// RecordsStats reports the account's record count against its plan limit.
func (c *Client) RecordsStats(ctx context.Context) (*UsageStats, error) {
	var out UsageStats
	if err := c.Call(ctx, "dns/get-records-stats.json", http.MethodGet, nil, &out); err != nil {
		return nil, fmt.Errorf("get records stats: %w", err)
	}

	return &out, nil
}

// Record fetches a single record by id.
func (c *Client) Record(ctx context.Context, domainName string, recordID int64) (*RecordInfo, error) {
	params := NewParams().
		Add("domain-name", domainName).
		AddInt("record-id", recordID)

	var out RecordInfo
	if err := c.Call(ctx, "dns/get-record.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("get record %d in %s: %w", recordID, domainName, err)
	}

	return &out, nil
}

// ListRecordsOptions filter and page [Client.ListRecords]. Zero values
// are unset; Page and RowsPerPage fall back to 1 and 20.
type ListRecordsOptions struct {
	Host        string
	HostLike    string
	Type        string
	RowsPerPage int
	Page        int
	OrderBy     string
}

// ListRecords returns one page of a zone's records, keyed by record id
// as the vendor reports them.
func (c *Client) ListRecords(ctx context.Context, domainName string, opts ListRecordsOptions) (map[string]RecordInfo, error) {
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.RowsPerPage == 0 {
		opts.RowsPerPage = 20
	}

	params := NewParams().
		Add("domain-name", domainName).
		Add("host", opts.Host).
		Add("host-like", opts.HostLike).
		Add("type", opts.Type).
		AddInt("rows-per-page", int64(opts.RowsPerPage)).
		AddInt("page", int64(opts.Page)).
		Add("order-by", opts.OrderBy)

	var out map[string]RecordInfo
	if err := c.Call(ctx, "dns/records.json", http.MethodGet, params, &out); err != nil {
		return nil, fmt.Errorf("list records %s: %w", domainName, err)
	}

	return out, nil
}

// RecordsPagesCountOptions mirror the list-records filters.
type RecordsPagesCountOptions struct {
	Host        string
	Type        string
	RowsPerPage int
}

// RecordsPagesCount reports how many pages [Client.ListRecords] would
// yield under the same filters.
func (c *Client) RecordsPagesCount(ctx context.Context, domainName string, opts RecordsPagesCountOptions) (int, error) {
	if opts.RowsPerPage == 0 {
		opts.RowsPerPage = 20
	}

	params := NewParams().
		Add("domain-name", domainName).
		Add("host", opts.Host).
		Add("type", opts.Type).
		AddInt("rows-per-page", int64(opts.RowsPerPage))

	var out int
	if err := c.Call(ctx, "dns/get-records-pages-count.json", http.MethodGet, params, &out); err != nil {
		return 0, fmt.Errorf("get records pages count %s: %w", domainName, err)
	}

	return out, nil
}

// AddRecord creates a record after validating the settings locally.
// Invalid settings fail with an error matching [ErrInvalidArgument]
// and no request is sent.
func (c *Client) AddRecord(ctx context.Context, rs RecordSettings) (*StatusResult, error) {
	if err := Validate(rs); err != nil {
		return nil, invalidRecord(err)
	}

	var out StatusResult
	if err := c.Call(ctx, "dns/add-record.json", http.MethodPost, rs.params(0, true), &out); err != nil {
		return nil, fmt.Errorf("add record to %s: %w", rs.DomainName, err)
	}

	return &out, nil
}

// DeleteRecord removes a record by id.
func (c *Client) DeleteRecord(ctx context.Context, domainName string, recordID int64) (*StatusResult, error) {
	params := NewParams().
		Add("domain-name", domainName).
		AddInt("record-id", recordID)

	var out StatusResult
	if err := c.Call(ctx, "dns/delete-record.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("delete record %d in %s: %w", recordID, domainName, err)
	}

	return &out, nil
}

// ModifyRecord updates an existing record. The record's type cannot be
// changed, so RecordType is ignored and exempt from validation.
func (c *Client) ModifyRecord(ctx context.Context, recordID int64, rs RecordSettings) (*StatusResult, error) {
	if err := validateExcept(rs, "RecordType"); err != nil {
		return nil, invalidRecord(err)
	}

	var out StatusResult
	if err := c.Call(ctx, "dns/mod-record.json", http.MethodPost, rs.params(recordID, false), &out); err != nil {
		return nil, fmt.Errorf("modify record %d in %s: %w", recordID, rs.DomainName, err)
	}

	return &out, nil
}

// CopyRecords copies all records from fromDomain into domainName,
// optionally deleting domainName's current records first.
func (c *Client) CopyRecords(ctx context.Context, domainName, fromDomain string, deleteCurrent bool) (*StatusResult, error) {
	params := NewParams().
		Add("domain-name", domainName).
		Add("from-domain", fromDomain).
		AddBool("delete-current-records", deleteCurrent)

	var out StatusResult
	if err := c.Call(ctx, "dns/copy-records.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("copy records %s -> %s: %w", fromDomain, domainName, err)
	}

	return &out, nil
}

// ImportOptions configure [Client.ImportRecords]. Format falls back to
// "bind". RecordTypes restricts the import to the given types, sent as
// repeated record-types[] keys in the given order.
type ImportOptions struct {
	DomainName            string
	Format                string
	Content               string
	DeleteExistingRecords bool
	RecordTypes           []string
}

// ImportRecords bulk-imports records from a BIND zone file or TinyDNS
// data. The delete-existing-records flag is always sent, encoded 1/0.
func (c *Client) ImportRecords(ctx context.Context, opts ImportOptions) (*StatusResult, error) {
	if opts.Format == "" {
		opts.Format = "bind"
	}

	params := NewParams().
		Add("domain-name", opts.DomainName).
		Add("format", opts.Format).
		Add("content", opts.Content)
	for _, t := range opts.RecordTypes {
		params.Add("record-types[]", t)
	}
	params.AddBool("delete-existing-records", opts.DeleteExistingRecords)

	var out StatusResult
	if err := c.Call(ctx, "dns/records-import.json", http.MethodPost, params, &out); err != nil {
		return nil, fmt.Errorf("import records %s: %w", opts.DomainName, err)
	}

	return &out, nil
}
