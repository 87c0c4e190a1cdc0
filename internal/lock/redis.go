package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Only delete the key if it still carries our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// Redis is a Locker shared by every API instance pointed at the same Redis.
// The key is taken with SET NX PX and a random token; the TTL bounds how long
// a crashed holder can block the others.
type Redis struct {
	client        *redis.Client
	key           string
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedis creates a Redis locker on key.
func NewRedis(client *redis.Client, key string, ttl, retryInterval time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if retryInterval <= 0 {
		retryInterval = 25 * time.Millisecond
	}
	return &Redis{client: client, key: key, ttl: ttl, retryInterval: retryInterval}
}

var _ Locker = (*Redis)(nil)

func (r *Redis) Acquire(ctx context.Context) (func(context.Context) error, error) {
	token := uuid.NewString()
	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, r.key, token, r.ttl).Result()
		if err != nil {
			log.Printf("RedisLock: Error acquiring %s: %v", r.key, err)
			return nil, fmt.Errorf("failed to acquire lock %s: %w", r.key, err)
		}
		if ok {
			return r.releaser(token), nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Redis) releaser(token string) func(context.Context) error {
	return func(ctx context.Context) error {
		res, err := r.client.Eval(ctx, releaseScript, []string{r.key}, token).Int64()
		if err != nil {
			log.Printf("RedisLock: Error releasing %s: %v", r.key, err)
			return fmt.Errorf("failed to release lock %s: %w", r.key, err)
		}
		if res == 0 {
			return ErrNotHeld
		}
		return nil
	}
}
