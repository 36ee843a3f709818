package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"tally/internal/amqp"
)

type fakeAppender struct {
	rows []*amqp.TransactionEvent
	err  error
}

func (f *fakeAppender) AppendEvent(_ context.Context, e *amqp.TransactionEvent) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rows = append(f.rows, e)
	return "Ledger!A2:G2", nil
}

func TestHandleEvent(t *testing.T) {
	appender := &fakeAppender{}
	w := NewAuditWorker(appender)

	event := &amqp.TransactionEvent{
		Kind:          amqp.KindRecorded,
		TransactionID: 7,
		OwnerID:       "u1",
		Category:      "Expense",
		AmountCents:   1250,
		OccurredAt:    time.Now().UTC(),
	}
	if err := w.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(appender.rows) != 1 || appender.rows[0].TransactionID != 7 {
		t.Fatalf("row not appended: %+v", appender.rows)
	}
}

func TestHandleEventPropagatesFailure(t *testing.T) {
	w := NewAuditWorker(&fakeAppender{err: errors.New("quota exceeded")})

	err := w.HandleEvent(context.Background(), &amqp.TransactionEvent{Kind: amqp.KindDeleted, TransactionID: 1})
	if err == nil {
		t.Fatalf("expected error so the delivery is requeued")
	}
}
