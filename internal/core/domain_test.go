package core

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Income", Income, true},
		{"Expense", Expense, true},
		{" Income ", Income, true},
		{"income", "", false},
		{"Savings", "", false},
		{"", "", false},
	}
	for i, tc := range cases {
		got, err := ParseCategory(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: ParseCategory(%q) = %v, %v", i, tc.in, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d: expected error for %q", i, tc.in)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -500}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		OwnerID:  "u1",
		Amount:   Money{Cents: 100},
		Category: Income,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{OwnerID: "", Amount: Money{Cents: 100}, Category: Income},
		{OwnerID: "u1", Amount: Money{Cents: 0}, Category: Income},
		{OwnerID: "u1", Amount: Money{Cents: -5}, Category: Expense},
		{OwnerID: "u1", Amount: Money{Cents: 100}, Category: "Savings"},
	}
	for i, tx := range bads {
		err := tx.Validate()
		if err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if !IsValidationError(err) {
			t.Fatalf("case %d: %v not recognized as validation error", i, err)
		}
	}
}

func TestNewDateRange(t *testing.T) {
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	rng, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	// End is pinned to the last instant of its calendar day.
	late := time.Date(2024, 3, 15, 23, 59, 59, 500_000_000, time.UTC)
	if !rng.Contains(late) {
		t.Fatalf("expected %v within %v", late, rng)
	}
	if !rng.Contains(start) {
		t.Fatalf("start bound should be inclusive")
	}
	next := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if rng.Contains(next) {
		t.Fatalf("next day should be excluded")
	}

	if _, err := NewDateRange(time.Time{}, end); err == nil {
		t.Fatalf("expected error for missing start")
	}
	if _, err := NewDateRange(start, time.Time{}); err == nil {
		t.Fatalf("expected error for missing end")
	}
	if _, err := NewDateRange(end.AddDate(0, 0, 2), end); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
