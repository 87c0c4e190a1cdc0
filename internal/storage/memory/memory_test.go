package memory_test

import (
	"context"
	"testing"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	seed := models.Application{ID: uuid.New(), Status: models.ApplicationStatusSubmitted, Position: 1}
	store := memory.NewStore(seed)

	apps, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	apps[0].Status = models.ApplicationStatusHired

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, again[0].Status)
}

func TestStore_SaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	apps := []models.Application{{ID: uuid.New(), Position: 1}, {ID: uuid.New(), Position: 2}}
	require.NoError(t, store.Save(ctx, apps))
	apps[0].Position = 99

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].Position)
	assert.Equal(t, 1, store.Saves())
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := memory.NewStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, nil), context.Canceled)
}
