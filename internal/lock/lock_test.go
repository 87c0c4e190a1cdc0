package lock_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"bid-ledger-api/internal/lock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_MutualExclusion(t *testing.T) {
	locker := lock.NewLocal()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	inside, maxInside := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			assert.NoError(t, release(ctx))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInside)
}

func TestLocal_AcquireHonoursContext(t *testing.T) {
	locker := lock.NewLocal()
	release, err := locker.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, release(context.Background()))
	release, err = locker.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
}

func TestLocal_DoubleRelease(t *testing.T) {
	locker := lock.NewLocal()
	release, err := locker.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, release(context.Background()))
	assert.ErrorIs(t, release(context.Background()), lock.ErrNotHeld)
}

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

func TestRedis_AcquireRelease(t *testing.T) {
	client := getTestRedis(t)
	key := "test:lock:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })
	locker := lock.NewRedis(client, key, time.Second, 5*time.Millisecond)

	release, err := locker.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, release(context.Background()))
	assert.ErrorIs(t, release(context.Background()), lock.ErrNotHeld)

	release, err = locker.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
}

func TestRedis_ExpiredLockIsNotReleasedByStaleHolder(t *testing.T) {
	client := getTestRedis(t)
	key := "test:lock:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })
	locker := lock.NewRedis(client, key, 50*time.Millisecond, 5*time.Millisecond)

	stale, err := locker.Acquire(context.Background())
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	fresh, err := locker.Acquire(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, stale(context.Background()), lock.ErrNotHeld)
	assert.NoError(t, fresh(context.Background()))
}
