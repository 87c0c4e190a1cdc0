package memory

import (
	"context"
	"sync"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"
)

// Store keeps the collection in process memory. Records are copied on the way
// in and out so callers can never mutate the stored state in place.
type Store struct {
	mu   sync.RWMutex
	apps []models.Application

	saves int
}

// NewStore creates a Store seeded with the given records.
func NewStore(seed ...models.Application) *Store {
	return &Store{apps: append([]models.Application(nil), seed...)}
}

// Compile-time check to ensure Store implements ApplicationStore
var _ storage.ApplicationStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.apps))
	copy(out, s.apps)
	return out, nil
}

func (s *Store) Save(ctx context.Context, apps []models.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append([]models.Application(nil), apps...)
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
