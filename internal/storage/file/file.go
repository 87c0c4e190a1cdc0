package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"
)

// Store persists the collection as a JSON array in a single file.
type Store struct {
	path string
}

// NewStore creates a Store writing to path. The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Compile-time check to ensure Store implements ApplicationStore
var _ storage.ApplicationStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Application{}, nil
		}
		log.Printf("FileStore: Error reading %s: %v", s.path, err)
		return nil, fmt.Errorf("failed to read application file: %w", err)
	}
	return storage.DecodeCollection(raw)
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write leaves the previous collection intact.
func (s *Store) Save(ctx context.Context, apps []models.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := storage.EncodeCollection(apps)
	if err != nil {
		return fmt.Errorf("failed to encode applications: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".applications-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		log.Printf("FileStore: Error replacing %s: %v", s.path, err)
		return fmt.Errorf("failed to replace application file: %w", err)
	}
	return nil
}
