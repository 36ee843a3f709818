package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tally/internal/auth"
	"tally/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestInsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.Insert(ctx, core.Transaction{
		OwnerID:     "u1",
		Amount:      core.Money{Cents: 1234},
		Category:    core.Expense,
		Description: "coffee",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if tx.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if tx.CreatedAt.IsZero() {
		t.Fatalf("expected assigned CreatedAt")
	}

	got, err := repo.Get(ctx, tx.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.OwnerID != "u1" || got.Amount.Cents != 1234 || got.Category != core.Expense {
		t.Fatalf("Get returned %+v", got)
	}
	if !got.CreatedAt.Equal(tx.CreatedAt) {
		t.Fatalf("CreatedAt round trip: got %v, want %v", got.CreatedAt, tx.CreatedAt)
	}
}

func TestListByOwnerScopingAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var last core.Transaction
	for i, owner := range []string{"alice", "bob", "alice"} {
		tx, err := repo.Insert(ctx, core.Transaction{
			OwnerID:  owner,
			Amount:   core.Money{Cents: int64(100 * (i + 1))},
			Category: core.Income,
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		last = tx
	}

	txns, err := repo.ListByOwner(ctx, "alice", nil)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 rows for alice, got %d", len(txns))
	}
	for _, tx := range txns {
		if tx.OwnerID != "alice" {
			t.Fatalf("foreign row leaked: %+v", tx)
		}
	}
	// Newest first: the last insert leads.
	if txns[0].ID != last.ID {
		t.Fatalf("order wrong: got %d first, want %d", txns[0].ID, last.ID)
	}
}

func TestListByOwnerRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.Insert(ctx, core.Transaction{
		OwnerID:  "u1",
		Amount:   core.Money{Cents: 100},
		Category: core.Income,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	today := tx.CreatedAt
	rng, err := core.NewDateRange(
		time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		today)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	txns, err := repo.ListByOwner(ctx, "u1", &rng)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("row should fall inside its own day: %+v", txns)
	}

	// A range entirely in the past excludes it.
	past, err := core.NewDateRange(
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	txns, err = repo.ListByOwner(ctx, "u1", &past)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("past range should be empty: %+v", txns)
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.Insert(ctx, core.Transaction{
		OwnerID:  "u1",
		Amount:   core.Money{Cents: 100},
		Category: core.Income,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, tx.ID); !errors.Is(err, ErrNoTransaction) {
		t.Fatalf("second delete: got %v, want ErrNoTransaction", err)
	}
	if _, err := repo.Get(ctx, tx.ID); !errors.Is(err, ErrNoTransaction) {
		t.Fatalf("Get after delete: got %v, want ErrNoTransaction", err)
	}
}

func TestUserRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := auth.User{
		ID:           "user-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: []byte("$2a$10$fakehash"),
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.InsertUser(ctx, user); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}

	byEmail, err := repo.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != user.ID || string(byEmail.PasswordHash) != string(user.PasswordHash) {
		t.Fatalf("GetUserByEmail returned %+v", byEmail)
	}

	byID, err := repo.GetUserByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Email != user.Email {
		t.Fatalf("GetUserByID returned %+v", byID)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, auth.ErrNoUser) {
		t.Fatalf("missing user: got %v, want ErrNoUser", err)
	}
}
