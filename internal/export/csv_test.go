package export

import (
	"strings"
	"testing"
	"time"

	"tally/internal/core"
)

func TestWriteCSV(t *testing.T) {
	when := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	sum := core.Summarize([]core.Transaction{
		{ID: 2, OwnerID: "u1", Amount: core.Money{Cents: 4050}, Category: core.Expense, Description: "groceries", CreatedAt: when},
		{ID: 1, OwnerID: "u1", Amount: core.Money{Cents: 100000}, Category: core.Income, Description: "salary", CreatedAt: when.Add(-time.Hour)},
	})

	var buf strings.Builder
	if err := WriteCSV(&buf, sum); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"id,date,category,amount,description",
		"2,2024-03-15T10:30:00Z,Expense,40.50,groceries",
		"1,2024-03-15T09:30:00Z,Income,1000.00,salary",
		",,,,",
		",,total income,1000.00,",
		",,total expense,40.50,",
		",,balance,959.50,",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, core.Summarize(nil)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "id,date,category,amount,description\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, ",,balance,0.00,") {
		t.Fatalf("missing zero balance:\n%s", out)
	}
}

func TestWriteCSVEscapesDescription(t *testing.T) {
	sum := core.Summarize([]core.Transaction{
		{ID: 1, Amount: core.Money{Cents: 100}, Category: core.Expense,
			Description: `dinner, "fancy"`, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	})

	var buf strings.Builder
	if err := WriteCSV(&buf, sum); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), `"dinner, ""fancy"""`) {
		t.Fatalf("description not quoted:\n%s", buf.String())
	}
}
