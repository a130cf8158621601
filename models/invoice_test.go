package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeTotalPayable(t *testing.T) {
	cases := []struct {
		ordersTotal     string
		previousBalance string
		paidAmount      string
		expected        string
	}{
		{"10000", "500", "2000", "8500"},
		{"0", "0", "0", "0"},
		{"1500.50", "0", "1500.50", "0"},
		{"2000", "-300", "0", "1700"}, // client was in credit
		{"1000", "200", "1500", "-300"},
	}
	for _, tc := range cases {
		got := ComputeTotalPayable(
			decimal.RequireFromString(tc.ordersTotal),
			decimal.RequireFromString(tc.previousBalance),
			decimal.RequireFromString(tc.paidAmount),
		)
		if !got.Equal(decimal.RequireFromString(tc.expected)) {
			t.Fatalf("ComputeTotalPayable(%s, %s, %s) expected %s, got %s",
				tc.ordersTotal, tc.previousBalance, tc.paidAmount, tc.expected, got)
		}
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	cases := []struct {
		prefix   string
		seq      int64
		month    time.Time
		expected string
	}{
		{"SRE", 12, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), "SRE12-8-26/27"},
		{"SRE", 1, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "SRE1-1-26/27"},
		{"", 205, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), "205-12-25/26"},
		{"INV-", 7, time.Date(2099, time.March, 1, 0, 0, 0, 0, time.UTC), "INV-7-3-99/00"},
	}
	for _, tc := range cases {
		got := FormatInvoiceNumber(tc.prefix, tc.seq, tc.month)
		if got != tc.expected {
			t.Fatalf("FormatInvoiceNumber(%q, %d, %s) expected %q, got %q",
				tc.prefix, tc.seq, tc.month.Format("2006-01"), tc.expected, got)
		}
	}
}
