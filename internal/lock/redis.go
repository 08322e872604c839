package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 30 * time.Second
	retryInterval = 50 * time.Millisecond
)

// RedisLocker implements Locker with SET NX and a TTL, so a crashed holder
// cannot leave a key locked forever.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			release := func() {
				l.client.Del(context.Background(), key)
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}
