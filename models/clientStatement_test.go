package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(d int) DateString {
	return DateString(time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC))
}

func TestBuildStatementEntries_RunningBalance(t *testing.T) {
	orders := []*Order{
		{ID: 1, OrderDate: day(5), Material: MaterialReti, Total: dec("10000")},
		{ID: 2, OrderDate: day(20), Material: MaterialKapchi, Total: dec("4000")},
	}
	payments := []*Payment{
		{ID: 1, PaymentDate: day(10), Mode: PaymentModeCash, Amount: dec("6000")},
	}

	entries := BuildStatementEntries(dec("500"), orders, payments)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	expected := []struct {
		sourceType string
		amount     string
		balance    string
	}{
		{"Order", "10000", "10500"},
		{"Payment", "-6000", "4500"},
		{"Order", "4000", "8500"},
	}
	for i, e := range expected {
		if entries[i].SourceType != e.sourceType {
			t.Fatalf("entry %d: expected %s, got %s", i, e.sourceType, entries[i].SourceType)
		}
		if !entries[i].Amount.Equal(dec(e.amount)) {
			t.Fatalf("entry %d: expected amount %s, got %s", i, e.amount, entries[i].Amount)
		}
		if !entries[i].Balance.Equal(dec(e.balance)) {
			t.Fatalf("entry %d: expected balance %s, got %s", i, e.balance, entries[i].Balance)
		}
	}
}

func TestBuildStatementEntries_SameDayOrdersFirst(t *testing.T) {
	orders := []*Order{
		{ID: 1, OrderDate: day(5), Material: MaterialGSB, Total: dec("3000")},
	}
	payments := []*Payment{
		{ID: 1, PaymentDate: day(5), Mode: PaymentModeUPI, Amount: dec("3000")},
	}

	entries := BuildStatementEntries(decimal.Zero, orders, payments)
	if entries[0].SourceType != "Order" || entries[1].SourceType != "Payment" {
		t.Fatalf("expected order before payment on the same day, got %s then %s",
			entries[0].SourceType, entries[1].SourceType)
	}
	if !entries[1].Balance.IsZero() {
		t.Fatalf("expected closing balance 0, got %s", entries[1].Balance)
	}
}

func TestBuildStatementEntries_Empty(t *testing.T) {
	entries := BuildStatementEntries(dec("250"), nil, nil)
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
