package cloudns

import "encoding/json"

// StatusResult is the vendor's generic acknowledgement for mutating
// operations. Data is present only for endpoints that create something,
// e.g. add-record returns the new record's id.
type StatusResult struct {
	Status            string      `json:"status"`
	StatusDescription string      `json:"statusDescription"`
	Data              *StatusData `json:"data,omitempty"`
}

type StatusData struct {
	ID int64 `json:"id"`
}

// Balance is the account funds as reported by get-balance. The vendor
// sends the amount as a decimal string.
type Balance struct {
	Funds json.Number `json:"funds"`
}

// Zone describes one hosted zone, as returned by list-zones entries
// and get-zone-info.
type Zone struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Zone   string `json:"zone"`
	Status string `json:"status"`
}

// UsageStats reports current object count against the plan limit, as
// returned by get-zones-stats and get-records-stats. The vendor is
// inconsistent about numbers vs numeric strings here.
type UsageStats struct {
	Count json.Number `json:"count"`
	Limit json.Number `json:"limit"`
}

// ServerUpdateStatus is one name server's propagation state for a zone.
type ServerUpdateStatus struct {
	Server  string `json:"server"`
	IP4     string `json:"ip4"`
	IP6     string `json:"ip6"`
	Updated bool   `json:"updated"`
}

// RecordInfo is one DNS resource record as the vendor reports it.
// Identifiers and TTLs arrive as strings or numbers depending on the
// endpoint, hence json.Number.
type RecordInfo struct {
	ID       json.Number `json:"id"`
	Type     string      `json:"type"`
	Host     string      `json:"host"`
	Record   string      `json:"record"`
	TTL      json.Number `json:"ttl"`
	Priority json.Number `json:"priority,omitempty"`
	Status   json.Number `json:"status,omitempty"`
}
