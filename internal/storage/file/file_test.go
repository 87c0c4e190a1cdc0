package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"
	"bid-ledger-api/internal/storage/file"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApps() []models.Application {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	jobID := uuid.New()
	return []models.Application{
		{
			ID: uuid.New(), JobID: jobID, FreelancerID: uuid.New(),
			Freelancer:    models.FreelancerSnapshot{Name: "Linus", Username: "linus", Rating: 3.9},
			ProposedPrice: 300, DeliveryDays: 7, Pitch: "Color grading included",
			Position: 1, Status: models.ApplicationStatusHired, CreatedAt: now, UpdatedAt: now.Add(time.Hour),
		},
		{
			ID: uuid.New(), JobID: jobID, FreelancerID: uuid.New(),
			ProposedPrice: 150, DeliveryDays: 2, Pitch: "Quick cut",
			QuestionForCreator: "Any brand guidelines?",
			Position:           2, Status: models.ApplicationStatusRejected, CreatedAt: now, UpdatedAt: now.Add(time.Hour),
		},
	}
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "nope", "applications.json"))

	apps, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "applications.json")
	store := file.NewStore(path)
	apps := sampleApps()

	require.NoError(t, store.Save(ctx, apps))

	// A fresh store on the same path sees the same records
	loaded, err := file.NewStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, apps, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.NewStore(filepath.Join(dir, "applications.json"))

	require.NoError(t, store.Save(ctx, sampleApps()))
	require.NoError(t, store.Save(ctx, sampleApps()[:1]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "applications.json", entries[0].Name())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications.json")
	require.NoError(t, os.WriteFile(path, []byte("[{broken"), 0o600))

	_, err := file.NewStore(path).Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}
