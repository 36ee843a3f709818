package ledger

import (
	"context"

	"tally/internal/core"
)

// TransactionStore is the persistence port for the ledger. Implementations
// must make inserts immediately visible to subsequent queries and must return
// ListByOwner results ordered by CreatedAt descending; that ordering is part
// of the contract, not an implementation detail.
type TransactionStore interface {
	// Insert persists the transaction, assigning its ID and CreatedAt, and
	// returns the stored value.
	Insert(ctx context.Context, t core.Transaction) (core.Transaction, error)

	// ListByOwner returns the owner's transactions, newest first, optionally
	// restricted to the inclusive range.
	ListByOwner(ctx context.Context, ownerID string, rng *core.DateRange) ([]core.Transaction, error)

	// Get returns a transaction by id regardless of owner, or
	// storage.ErrNoTransaction.
	Get(ctx context.Context, id int64) (core.Transaction, error)

	// Delete removes a transaction by id, or storage.ErrNoTransaction.
	Delete(ctx context.Context, id int64) error
}

// EventPublisher notifies downstream consumers of ledger changes. Publishing
// is best-effort: the service never fails a request over a lost event.
type EventPublisher interface {
	PublishRecorded(ctx context.Context, t core.Transaction) error
	PublishDeleted(ctx context.Context, t core.Transaction) error
}
