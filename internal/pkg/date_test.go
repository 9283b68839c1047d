package pkg_test

import (
	"encoding/json"
	"testing"
	"time"

	"Carteira/internal/pkg"
)

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := pkg.NewDate(2023, time.January, 1)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2023-01-01"` {
		t.Fatalf("expected \"2023-01-01\", got %s", raw)
	}

	var parsed pkg.Date
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.String() != "2023-01-01" {
		t.Fatalf("round trip mismatch: %s", parsed)
	}
}

func TestDateUnmarshalRejectsBadLayouts(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`"01/01/2023"`, `"2023-13-01"`, `"hoje"`} {
		var d pkg.Date
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("expected error for %s", raw)
		}
	}
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	var d pkg.Date
	if err := d.Scan(time.Date(2024, time.June, 30, 15, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d.String() != "2024-06-30" {
		t.Fatalf("expected 2024-06-30, got %s", d)
	}

	if err := d.Scan("2023-02-01"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2023-02-01" {
		t.Fatalf("expected 2023-02-01, got %s", d)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := pkg.ParseID("42")
	if err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}

	for _, raw := range []string{"", "abc", "-1", "1.5"} {
		if _, err := pkg.ParseID(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
