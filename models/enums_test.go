package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPaymentModeValid(t *testing.T) {
	for _, m := range []PaymentMode{PaymentModeCash, PaymentModeUPI, PaymentModeBank} {
		if !m.Valid() {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	for _, m := range []PaymentMode{"", "cash", "Cheque"} {
		if m.Valid() {
			t.Fatalf("expected %q to be invalid", m)
		}
	}
}

func TestDateStringJSON(t *testing.T) {
	d := DateString(time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `"2026-08-05"` {
		t.Fatalf("expected \"2026-08-05\", got %s", b)
	}

	var parsed DateString
	if err := json.Unmarshal([]byte(`"2026-08-05"`), &parsed); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !parsed.Time().Equal(d.Time()) {
		t.Fatalf("round trip mismatch: %v vs %v", parsed.Time(), d.Time())
	}

	// full timestamps from older clients still parse
	if err := json.Unmarshal([]byte(`"2026-08-05T00:00:00Z"`), &parsed); err != nil {
		t.Fatalf("unmarshal RFC3339 error: %v", err)
	}
	if parsed.Time().Format("2006-01-02") != "2026-08-05" {
		t.Fatalf("expected 2026-08-05, got %s", parsed.Time())
	}
}
