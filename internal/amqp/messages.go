package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"tally/internal/core"
)

// Event kinds carried on the ledger events queue.
const (
	KindRecorded = "recorded"
	KindDeleted  = "deleted"
)

// TransactionEvent is the full change notification for a ledger transaction.
// It carries the whole record so consumers never need database access.
type TransactionEvent struct {
	Kind          string    `json:"kind"`
	TransactionID int64     `json:"transaction_id"`
	OwnerID       string    `json:"owner_id"`
	Category      string    `json:"category"`
	AmountCents   int64     `json:"amount_cents"`
	Description   string    `json:"description,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewTransactionEvent snapshots a transaction into an event of the given kind.
func NewTransactionEvent(kind string, t core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Kind:          kind,
		TransactionID: t.ID,
		OwnerID:       t.OwnerID,
		Category:      string(t.Category),
		AmountCents:   t.Amount.Cents,
		Description:   t.Description,
		OccurredAt:    time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON parses an event from JSON bytes.
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if e.Kind != KindRecorded && e.Kind != KindDeleted {
		return nil, fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return &e, nil
}
