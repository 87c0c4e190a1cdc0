package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"
	redisstore "bid-ledger-api/internal/storage/redis"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestRedis connects to the Redis named by TEST_REDIS_URL or skips.
func getTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { client.Close() })
	return client
}

func TestStore_RoundTrip(t *testing.T) {
	client := getTestRedis(t)
	ctx := context.Background()
	key := "test:applications:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })
	store := redisstore.NewStore(client, key)

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	now := time.Now().UTC().Truncate(time.Second)
	apps := []models.Application{{
		ID: uuid.New(), JobID: uuid.New(), FreelancerID: uuid.New(),
		ProposedPrice: 40, DeliveryDays: 1, Pitch: "Thumbnail pack",
		Position: 1, Status: models.ApplicationStatusSubmitted, CreatedAt: now, UpdatedAt: now,
	}}
	require.NoError(t, store.Save(ctx, apps))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, apps, loaded)
}

func TestStore_CorruptValue(t *testing.T) {
	client := getTestRedis(t)
	ctx := context.Background()
	key := "test:applications:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })
	require.NoError(t, client.Set(ctx, key, "not json", 0).Err())

	_, err := redisstore.NewStore(client, key).Load(ctx)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}
