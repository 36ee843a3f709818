// Package ledger implements the transaction ledger: recording, listing with
// date-range filtering, aggregation and ownership-checked deletion. It is the
// only component that reads or writes the transaction store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tally/internal/core"
	"tally/internal/storage"
)

var (
	// ErrUnauthenticated means no verified owner reached the service. The
	// boundary gates this already; the service re-asserts it defensively.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound means the referenced transaction does not exist. Callers
	// must treat it as terminal, not transient.
	ErrNotFound = errors.New("transaction not found")

	// ErrForbidden means the transaction exists but belongs to another owner.
	ErrForbidden = errors.New("not allowed")
)

// Service enforces ownership and validation over a TransactionStore.
// It holds no transaction data between calls.
type Service struct {
	store  TransactionStore
	events EventPublisher
}

// NewService wires the ledger over its store. events may be nil, in which
// case change notifications are skipped.
func NewService(store TransactionStore, events EventPublisher) *Service {
	return &Service{store: store, events: events}
}

// Record validates and persists a new transaction for the verified owner.
// The owner always comes from the verified credential, never from client
// input.
func (s *Service) Record(ctx context.Context, ownerID string, amount core.Money, category core.Category, description string) (core.Transaction, error) {
	if strings.TrimSpace(ownerID) == "" {
		return core.Transaction{}, ErrUnauthenticated
	}

	t := core.Transaction{
		OwnerID:     ownerID,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	stored, err := s.store.Insert(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"transaction_id", stored.ID,
		"owner_id", stored.OwnerID,
		"category", stored.Category,
		"amount_cents", stored.Amount.Cents)

	s.publishRecorded(ctx, stored)
	return stored, nil
}

// List returns the owner's transactions newest first, with income and expense
// totals computed over exactly the returned set. rng may be nil for the full
// ledger.
func (s *Service) List(ctx context.Context, ownerID string, rng *core.DateRange) (core.Summary, error) {
	if strings.TrimSpace(ownerID) == "" {
		return core.Summary{}, ErrUnauthenticated
	}

	txns, err := s.store.ListByOwner(ctx, ownerID, rng)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return core.Summarize(txns), nil
}

// Delete removes the owner's transaction. A missing id yields ErrNotFound; an
// id owned by someone else yields ErrForbidden and leaves the record intact.
// The ownership check happens here, never in the store.
func (s *Service) Delete(ctx context.Context, ownerID string, id int64) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrUnauthenticated
	}

	t, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoTransaction) {
			return ErrNotFound
		}
		return fmt.Errorf("get transaction: %w", err)
	}
	if t.OwnerID != ownerID {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNoTransaction) {
			return ErrNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction deleted",
		"transaction_id", id,
		"owner_id", ownerID)

	s.publishDeleted(ctx, t)
	return nil
}

func (s *Service) publishRecorded(ctx context.Context, t core.Transaction) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRecorded(ctx, t); err != nil {
		// Event loss is acceptable; the transaction is already persisted.
		slog.ErrorContext(ctx, "Failed to publish recorded event",
			"transaction_id", t.ID, "error", err)
	}
}

func (s *Service) publishDeleted(ctx context.Context, t core.Transaction) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishDeleted(ctx, t); err != nil {
		slog.ErrorContext(ctx, "Failed to publish deleted event",
			"transaction_id", t.ID, "error", err)
	}
}
