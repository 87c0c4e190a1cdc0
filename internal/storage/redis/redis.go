package redis

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Store keeps the whole collection as one JSON array under a single key.
// A single SET replaces it, which gives readers an atomic view.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore creates a Store using key on client.
func NewStore(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Compile-time check to ensure Store implements ApplicationStore
var _ storage.ApplicationStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) ([]models.Application, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Application{}, nil
		}
		log.Printf("RedisStore: Error reading key %s: %v", s.key, err)
		return nil, fmt.Errorf("failed to read applications from redis: %w", err)
	}
	return storage.DecodeCollection(raw)
}

func (s *Store) Save(ctx context.Context, apps []models.Application) error {
	payload, err := storage.EncodeCollection(apps)
	if err != nil {
		return fmt.Errorf("failed to encode applications: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		log.Printf("RedisStore: Error writing key %s: %v", s.key, err)
		return fmt.Errorf("failed to write applications to redis: %w", err)
	}
	return nil
}
