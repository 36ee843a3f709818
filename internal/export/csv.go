// Package export renders ledger summaries for machine consumption. The HTTP
// layer streams its output; rendering never mutates the ledger.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"tally/internal/core"
)

var csvHeader = []string{"id", "date", "category", "amount", "description"}

// WriteCSV renders the summary as CSV: a header, one row per transaction in
// the summary's order, then blank-separated total rows. Amounts are decimal
// strings, dates RFC 3339 in UTC.
func WriteCSV(w io.Writer, sum core.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range sum.Transactions {
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.UTC().Format(time.RFC3339),
			string(t.Category),
			t.Amount.DecimalString(),
			t.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	totals := [][]string{
		{"", "", "", "", ""},
		{"", "", "total income", sum.TotalIncome.DecimalString(), ""},
		{"", "", "total expense", sum.TotalExpense.DecimalString(), ""},
		{"", "", "balance", sum.Balance().DecimalString(), ""},
	}
	for _, row := range totals {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
