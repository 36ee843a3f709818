package core

// Summary holds the aggregate totals for one query result. Totals are derived
// from exactly the transactions carried in the summary, never from the full
// ledger, and are recomputed on every read.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Transactions []Transaction
}

// Balance is TotalIncome - TotalExpense. It is never persisted.
func (s Summary) Balance() Money {
	return Money{Cents: s.TotalIncome.Cents - s.TotalExpense.Cents}
}

// Summarize computes income and expense totals over the given set,
// preserving its order.
func Summarize(txns []Transaction) Summary {
	s := Summary{Transactions: txns}
	for _, t := range txns {
		switch t.Category {
		case Income:
			s.TotalIncome.Cents += t.Amount.Cents
		case Expense:
			s.TotalExpense.Cents += t.Amount.Cents
		}
	}
	return s
}
