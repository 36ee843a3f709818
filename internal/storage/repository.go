package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tally/internal/auth"
	"tally/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNoTransaction is returned when a transaction id matches nothing.
var ErrNoTransaction = errors.New("no such transaction")

// SQLiteRepository persists users and transactions in a single SQLite file.
// It implements ledger.TransactionStore and auth.UserStore.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements ledger.TransactionStore. The store assigns both the id
// and the creation timestamp.
func (r *SQLiteRepository) Insert(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (owner_id, amount_cents, category, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.OwnerID, t.Amount.Cents, string(t.Category), t.Description, t.CreatedAt.UnixNano())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}
	t.ID = id

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"transaction_id", t.ID,
		"owner_id", t.OwnerID,
		"category", t.Category,
		"amount_cents", t.Amount.Cents)

	return t, nil
}

// ListByOwner implements ledger.TransactionStore. Results are ordered newest
// first; ties on created_at break on id so a fresh insert always lists first.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string, rng *core.DateRange) ([]core.Transaction, error) {
	query := `SELECT id, owner_id, amount_cents, category, description, created_at
	          FROM transactions WHERE owner_id = ?`
	args := []any{ownerID}
	if rng != nil {
		query += ` AND created_at >= ? AND created_at <= ?`
		args = append(args, rng.Start.UnixNano(), rng.End.UnixNano())
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}

// Get implements ledger.TransactionStore.
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, amount_cents, category, description, created_at
		 FROM transactions WHERE id = ?`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, ErrNoTransaction
		}
		return core.Transaction{}, err
	}
	return t, nil
}

// Delete implements ledger.TransactionStore.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNoTransaction
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t         core.Transaction
		category  string
		createdAt int64
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Amount.Cents, &category, &t.Description, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	t.Category = core.Category(category)
	t.CreatedAt = time.Unix(0, createdAt).UTC()
	return t, nil
}

// InsertUser implements auth.UserStore.
func (r *SQLiteRepository) InsertUser(ctx context.Context, u auth.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail implements auth.UserStore.
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	return r.getUser(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email)
}

// GetUserByID implements auth.UserStore.
func (r *SQLiteRepository) GetUserByID(ctx context.Context, id string) (auth.User, error) {
	return r.getUser(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepository) getUser(ctx context.Context, query string, arg any) (auth.User, error) {
	var (
		u         auth.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNoUser
		}
		return auth.User{}, fmt.Errorf("query user: %w", err)
	}
	u.CreatedAt = time.Unix(0, createdAt).UTC()
	return u, nil
}
