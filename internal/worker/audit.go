// Package worker processes ledger change events off the queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
)

// EventAppender writes one audit row per event. Satisfied by sheets.Client.
type EventAppender interface {
	AppendEvent(ctx context.Context, e *amqp.TransactionEvent) (string, error)
}

// AuditWorker mirrors transaction events into an append-only audit log.
type AuditWorker struct {
	appender EventAppender
}

func NewAuditWorker(appender EventAppender) *AuditWorker {
	return &AuditWorker{appender: appender}
}

// HandleEvent processes a single event. Returning an error requeues the
// delivery, so only transient failures should propagate.
func (w *AuditWorker) HandleEvent(ctx context.Context, e *amqp.TransactionEvent) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"kind", e.Kind,
		"transaction_id", e.TransactionID,
		"owner_id", e.OwnerID)

	ref, err := w.appender.AppendEvent(ctx, e)
	if err != nil {
		return fmt.Errorf("append audit row: %w", err)
	}

	slog.InfoContext(ctx, "Audit row written",
		"kind", e.Kind,
		"transaction_id", e.TransactionID,
		"range", ref)
	return nil
}
