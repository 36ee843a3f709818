// Package memory provides an in-memory store with the same ordering and
// range semantics as the SQLite repository. It backs the `memory` data
// backend and the test suites.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tally/internal/auth"
	"tally/internal/core"
	"tally/internal/storage"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	txns   map[int64]core.Transaction
	users  map[string]auth.User // keyed by id

	// now is swappable so tests can control CreatedAt.
	now func() time.Time
}

func New() *Store {
	return &Store{
		nextID: 1,
		txns:   make(map[int64]core.Transaction),
		users:  make(map[string]auth.User),
		now:    time.Now,
	}
}

// SetClock replaces the timestamp source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Insert implements ledger.TransactionStore.
func (s *Store) Insert(_ context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID
	s.nextID++
	t.CreatedAt = s.now().UTC()
	s.txns[t.ID] = t
	return t, nil
}

// ListByOwner implements ledger.TransactionStore.
func (s *Store) ListByOwner(_ context.Context, ownerID string, rng *core.DateRange) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Transaction
	for _, t := range s.txns {
		if t.OwnerID != ownerID {
			continue
		}
		if rng != nil && !rng.Contains(t.CreatedAt) {
			continue
		}
		out = append(out, t)
	}

	// Newest first; ties on CreatedAt break on id so a fresh insert lists first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get implements ledger.TransactionStore.
func (s *Store) Get(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.txns[id]
	if !ok {
		return core.Transaction{}, storage.ErrNoTransaction
	}
	return t, nil
}

// Delete implements ledger.TransactionStore.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txns[id]; !ok {
		return storage.ErrNoTransaction
	}
	delete(s.txns, id)
	return nil
}

// InsertUser implements auth.UserStore.
func (s *Store) InsertUser(_ context.Context, u auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

// GetUserByEmail implements auth.UserStore.
func (s *Store) GetUserByEmail(_ context.Context, email string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNoUser
}

// GetUserByID implements auth.UserStore.
func (s *Store) GetUserByID(_ context.Context, id string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return auth.User{}, auth.ErrNoUser
	}
	return u, nil
}
