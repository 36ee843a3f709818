package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

type (
	// Category is the two-valued transaction tag. The set is closed.
	Category string

	Money struct {
		Cents int64
	}

	// Transaction is a single ledger entry owned by exactly one user for
	// its entire lifetime. Entries are never updated in place.
	Transaction struct {
		ID          int64
		OwnerID     string
		Amount      Money
		Category    Category
		Description string
		CreatedAt   time.Time
	}

	// DateRange is an inclusive [Start, End] filter over CreatedAt.
	DateRange struct {
		Start time.Time
		End   time.Time
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrMissingOwner     = errors.New("missing owner")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// IsValidationError reports whether err is one of the domain validation
// sentinels, so the boundary can translate them uniformly.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrMissingOwner) ||
		errors.Is(err, ErrInvalidDateRange)
}

// ParseCategory accepts exactly "Income" or "Expense".
func ParseCategory(s string) (Category, error) {
	switch Category(strings.TrimSpace(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) Validate() error {
	switch c {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidCategory
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.OwnerID) == "" {
		return ErrMissingOwner
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Category.Validate(); err != nil {
		return err
	}
	// Description is optional and has no length constraint.
	return nil
}

// NewDateRange validates that both bounds are present and ordered, and
// normalizes End to the last instant of its calendar day so whole-day
// filtering is inclusive regardless of the time component supplied.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDateRange
	}
	end = EndOfDay(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// EndOfDay returns 23:59:59.999999999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Contains reports whether ts falls within the range, inclusive on both ends.
func (r DateRange) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}
