package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"staff@shreeram.in", "a.b+c@example.com"}
	invalid := []string{"", "not-an-email", "missing@tld@twice"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"1500", "1500"},
		{"1500.25", "1500.25"},
		{" 12.5 ", "12.5"},
	}
	for _, tc := range cases {
		d, err := ParseDecimal(tc.in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q) error: %v", tc.in, err)
		}
		if d.String() != tc.expected {
			t.Fatalf("ParseDecimal(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
	if _, err := ParseDecimal("abc"); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(string(hash), "secret123"); err != nil {
		t.Fatalf("expected matching password to compare: %v", err)
	}
	if err := ComparePassword(string(hash), "wrong"); err == nil {
		t.Fatalf("expected mismatch to fail")
	}
	// a stored hash that is not bcrypt at all must also fail
	if err := ComparePassword("plaintext-not-a-hash", "secret123"); err == nil {
		t.Fatalf("expected corrupted hash to fail")
	}
}

func TestDereferencePtr(t *testing.T) {
	fallback := decimal.NewFromInt(250)
	if got := DereferencePtr[decimal.Decimal](nil, fallback); !got.Equal(fallback) {
		t.Fatalf("expected nil pointer to yield default, got %s", got)
	}
	v := decimal.NewFromInt(42)
	if got := DereferencePtr(&v, fallback); !got.Equal(v) {
		t.Fatalf("expected pointer value, got %s", got)
	}
	if got := DereferencePtr[int](nil); got != 0 {
		t.Fatalf("expected zero value, got %d", got)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	if err := ValidatePhoneNumber("9876543210", CountryCode); err != nil {
		t.Fatalf("expected indian mobile number to validate: %v", err)
	}
	if err := ValidatePhoneNumber("12", CountryCode); err == nil {
		t.Fatalf("expected short number to fail")
	}
}
