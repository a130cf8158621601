package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeClientBalance(t *testing.T) {
	cases := []struct {
		name     string
		opening  string
		orders   []string
		payments []string
		expected string
	}{
		{"no activity", "500", nil, nil, "500"},
		{"orders add", "0", []string{"10000", "2500"}, nil, "12500"},
		{"payments subtract", "0", []string{"10000"}, []string{"4000", "1000"}, "5000"},
		{"overpayment goes negative", "0", []string{"1000"}, []string{"1500"}, "-500"},
		{"opening carries", "750.25", []string{"100"}, []string{"50.25"}, "800"},
	}
	for _, tc := range cases {
		orders := make([]decimal.Decimal, 0, len(tc.orders))
		for _, s := range tc.orders {
			orders = append(orders, dec(s))
		}
		payments := make([]decimal.Decimal, 0, len(tc.payments))
		for _, s := range tc.payments {
			payments = append(payments, dec(s))
		}
		got := ComputeClientBalance(dec(tc.opening), orders, payments)
		if !got.Equal(dec(tc.expected)) {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	cases := []struct {
		weight   string
		rate     string
		expected string
	}{
		{"10", "1500", "15000"},
		{"2.5", "1200", "3000"},
		{"0.001", "100000", "100"},
		{"12.345", "800", "9876"},
	}
	for _, tc := range cases {
		got := OrderTotal(dec(tc.weight), dec(tc.rate))
		if !got.Equal(dec(tc.expected)) {
			t.Fatalf("OrderTotal(%s, %s) expected %s, got %s", tc.weight, tc.rate, tc.expected, got)
		}
	}
}
