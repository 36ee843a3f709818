package core

import "testing"

func TestSummarize(t *testing.T) {
	txns := []Transaction{
		{ID: 2, OwnerID: "u1", Amount: Money{Cents: 4000}, Category: Expense},
		{ID: 1, OwnerID: "u1", Amount: Money{Cents: 10000}, Category: Income},
	}

	s := Summarize(txns)
	if s.TotalIncome.Cents != 10000 {
		t.Fatalf("TotalIncome = %d, want 10000", s.TotalIncome.Cents)
	}
	if s.TotalExpense.Cents != 4000 {
		t.Fatalf("TotalExpense = %d, want 4000", s.TotalExpense.Cents)
	}
	if s.Balance().Cents != 6000 {
		t.Fatalf("Balance = %d, want 6000", s.Balance().Cents)
	}
	// Order of the input set is preserved.
	if s.Transactions[0].ID != 2 || s.Transactions[1].ID != 1 {
		t.Fatalf("Summarize must not reorder transactions")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpense.Cents != 0 || s.Balance().Cents != 0 {
		t.Fatalf("empty summary should be all zeroes, got %+v", s)
	}
}

// Totals are computed over exactly the given set, so a subset summarizes to
// subset totals, not ledger totals.
func TestSummarizeSubset(t *testing.T) {
	all := []Transaction{
		{Amount: Money{Cents: 100}, Category: Income},
		{Amount: Money{Cents: 200}, Category: Income},
		{Amount: Money{Cents: 50}, Category: Expense},
	}
	sub := Summarize(all[1:])
	if sub.TotalIncome.Cents != 200 || sub.TotalExpense.Cents != 50 {
		t.Fatalf("subset totals wrong: %+v", sub)
	}
}
