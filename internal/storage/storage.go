package storage

import (
	"context"

	"bid-ledger-api/internal/models"
)

// ApplicationStore persists the whole application collection.
// Load returns every record in the order they were saved; Save replaces the
// stored collection atomically, so concurrent readers see either the previous
// or the new collection, never a mix.
type ApplicationStore interface {
	Load(ctx context.Context) ([]models.Application, error)
	Save(ctx context.Context, apps []models.Application) error
}
