package cloudns_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gocloudns/cloudns"
)

func TestValidate_RecordSettings(t *testing.T) {
	testCases := map[string]struct {
		rs        cloudns.RecordSettings
		expFields []string
	}{
		"valid": {
			rs: cloudns.RecordSettings{
				DomainName: "example.com",
				RecordType: "A",
				Record:     "203.0.113.7",
				TTL:        3600,
			},
		},
		"missingEverything": {
			rs:        cloudns.RecordSettings{},
			expFields: []string{"domain-name", "record-type", "record", "ttl"},
		},
		"badTTL": {
			rs: cloudns.RecordSettings{
				DomainName: "example.com",
				RecordType: "A",
				Record:     "203.0.113.7",
				TTL:        1234,
			},
			expFields: []string{"ttl"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := cloudns.Validate(tc.rs)

			if len(tc.expFields) == 0 {
				if err != nil {
					t.Fatalf("expected valid settings, got: %v", err)
				}
				return
			}

			var fields cloudns.FieldErrors
			if !errors.As(err, &fields) {
				t.Fatalf("expected FieldErrors, got: %v", err)
			}

			got := make(map[string]bool, len(fields))
			for _, f := range fields {
				got[f.Field] = true
			}
			for _, want := range tc.expFields {
				if !got[want] {
					t.Errorf("expected a field error for %q; got %v", want, fields)
				}
			}
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := cloudns.Validate(cloudns.RecordSettings{
		DomainName: "example.com",
		RecordType: "A",
		TTL:        3600,
	})
	if err == nil {
		t.Fatal("expected error for missing record value")
	}

	msg := err.Error()
	if !strings.Contains(msg, "record") {
		t.Errorf("expected field name in message, got %q", msg)
	}
	if !strings.Contains(msg, "This field is required") {
		t.Errorf("expected required-field message, got %q", msg)
	}
}
