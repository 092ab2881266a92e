package cloudns_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gocloudns/cloudns"
)

func TestClient_AddRecord(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success","statusDescription":"The record was added successfully.","data":{"id":12345}}`)
	c := d.client(t)

	res, err := c.AddRecord(t.Context(), cloudns.RecordSettings{
		DomainName: "example.com",
		RecordType: "A",
		Record:     "203.0.113.7",
		Host:       "www",
		TTL:        3600,
	})
	if err != nil {
		t.Fatalf("add record: %v", err)
	}

	if res.Data == nil || res.Data.ID != 12345 {
		t.Errorf("expected created record id 12345, got %+v", res.Data)
	}

	form := d.params()
	for key, want := range map[string]string{
		"domain-name": "example.com",
		"record-type": "A",
		"record":      "203.0.113.7",
		"host":        "www",
		"ttl":         "3600",
	} {
		if got := form.Get(key); got != want {
			t.Errorf("expected %s=%s, got %q", key, want, got)
		}
	}
}

func TestClient_AddRecord_ExtraFields(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success"}`)
	c := d.client(t)

	_, err := c.AddRecord(t.Context(), cloudns.RecordSettings{
		DomainName: "example.com",
		RecordType: "MX",
		Record:     "mail.example.com",
		TTL:        3600,
		Extra:      map[string]string{"priority": "10"},
	})
	if err != nil {
		t.Fatalf("add record: %v", err)
	}

	if got := d.params().Get("priority"); got != "10" {
		t.Errorf("expected priority=10 from Extra, got %q", got)
	}
}

func TestClient_AddRecord_ExtraOverridesNamed(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success"}`)
	c := d.client(t)

	_, err := c.AddRecord(t.Context(), cloudns.RecordSettings{
		DomainName: "example.com",
		RecordType: "A",
		Record:     "203.0.113.7",
		Host:       "www",
		TTL:        3600,
		Extra:      map[string]string{"host": "@"},
	})
	if err != nil {
		t.Fatalf("add record: %v", err)
	}

	hosts := d.params()["host"]
	if len(hosts) != 1 {
		t.Fatalf("expected a single host entry after override, got %v", hosts)
	}
	if hosts[0] != "@" {
		t.Errorf("expected Extra to override host, got %q", hosts[0])
	}
}

func TestClient_AddRecord_Invalid(t *testing.T) {
	testCases := map[string]struct {
		rs cloudns.RecordSettings
	}{
		"missingRecord": {
			rs: cloudns.RecordSettings{DomainName: "example.com", RecordType: "A", TTL: 3600},
		},
		"missingType": {
			rs: cloudns.RecordSettings{DomainName: "example.com", Record: "203.0.113.7", TTL: 3600},
		},
		"unacceptedTTL": {
			rs: cloudns.RecordSettings{DomainName: "example.com", RecordType: "A", Record: "203.0.113.7", TTL: 123},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			d := newAPIDouble(t, http.StatusOK, `{"status":"Success"}`)
			c := d.client(t)

			_, err := c.AddRecord(t.Context(), tc.rs)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, cloudns.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got: %v", err)
			}

			var fields cloudns.FieldErrors
			if !errors.As(err, &fields) {
				t.Errorf("expected FieldErrors in chain, got: %v", err)
			}

			if got := d.callCount(); got != 0 {
				t.Errorf("expected zero transport calls, got %d", got)
			}
		})
	}
}

func TestClient_ModifyRecord(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success","statusDescription":"The record was modified successfully."}`)
	c := d.client(t)

	// No RecordType: mod-record takes none, and validation must not demand it.
	_, err := c.ModifyRecord(t.Context(), 12345, cloudns.RecordSettings{
		DomainName: "example.com",
		Record:     "203.0.113.8",
		Host:       "www",
		TTL:        300,
	})
	if err != nil {
		t.Fatalf("modify record: %v", err)
	}

	form := d.params()
	if got := form.Get("record-id"); got != "12345" {
		t.Errorf("expected record-id=12345, got %q", got)
	}
	if _, ok := form["record-type"]; ok {
		t.Error("expected record-type to be absent from mod-record")
	}
}

func TestClient_ListRecords(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK,
		`{"12345":{"id":"12345","type":"A","host":"www","record":"203.0.113.7","ttl":"3600"}}`)
	c := d.client(t)

	records, err := c.ListRecords(t.Context(), "example.com", cloudns.ListRecordsOptions{})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}

	rec, ok := records["12345"]
	if !ok {
		t.Fatalf("expected record keyed by id, got %v", records)
	}
	if rec.Type != "A" || rec.Host != "www" {
		t.Errorf("unexpected record decoded: %+v", rec)
	}

	q := d.params()
	if got := q.Get("domain-name"); got != "example.com" {
		t.Errorf("expected domain-name=example.com, got %q", got)
	}
	for _, key := range []string{"host", "host-like", "type", "order-by"} {
		if _, ok := q[key]; ok {
			t.Errorf("expected %s to be omitted when unset", key)
		}
	}
}

func TestClient_DeleteRecord(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success","statusDescription":"The record was deleted successfully."}`)
	c := d.client(t)

	if _, err := c.DeleteRecord(t.Context(), "example.com", 12345); err != nil {
		t.Fatalf("delete record: %v", err)
	}

	if d.lastPath != "/dns/delete-record.json" {
		t.Errorf("expected delete-record endpoint, got %q", d.lastPath)
	}
	if got := d.params().Get("record-id"); got != "12345" {
		t.Errorf("expected record-id=12345, got %q", got)
	}
}

func TestClient_CopyRecords(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success"}`)
	c := d.client(t)

	if _, err := c.CopyRecords(t.Context(), "example.com", "example.org", true); err != nil {
		t.Fatalf("copy records: %v", err)
	}

	form := d.params()
	if got := form.Get("from-domain"); got != "example.org" {
		t.Errorf("expected from-domain=example.org, got %q", got)
	}
	if got := form.Get("delete-current-records"); got != "1" {
		t.Errorf("expected delete-current-records=1, got %q", got)
	}
}

func TestClient_ImportRecords(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"status":"Success"}`)
	c := d.client(t)

	_, err := c.ImportRecords(t.Context(), cloudns.ImportOptions{
		DomainName:  "example.com",
		Content:     "www 3600 IN A 203.0.113.7",
		RecordTypes: []string{"A", "AAAA"},
	})
	if err != nil {
		t.Fatalf("import records: %v", err)
	}

	form := d.params()
	if got := form.Get("format"); got != "bind" {
		t.Errorf("expected default format=bind, got %q", got)
	}

	// Two distinct repeated entries, input order preserved.
	if diff := cmp.Diff([]string{"A", "AAAA"}, form["record-types[]"]); diff != "" {
		t.Errorf("record-types[] mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(d.lastRawBody, "record-types%5B%5D=A&record-types%5B%5D=AAAA") {
		t.Errorf("expected ordered repeated keys on the wire, got body %q", d.lastRawBody)
	}

	// The flag is always present, even when false.
	if got := form.Get("delete-existing-records"); got != "0" {
		t.Errorf("expected delete-existing-records=0, got %q", got)
	}
}

func TestClient_RecordsStats(t *testing.T) {
	d := newAPIDouble(t, http.StatusOK, `{"count":"42","limit":"100"}`)
	c := d.client(t)

	stats, err := c.RecordsStats(t.Context())
	if err != nil {
		t.Fatalf("records stats: %v", err)
	}

	if stats.Count.String() != "42" || stats.Limit.String() != "100" {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
