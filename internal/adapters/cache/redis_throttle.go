package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/samasante/backend/internal/domain/providers"
	redisclient "github.com/samasante/backend/internal/infrastructure/clients/redis"
)

const (
	rateKeyPrefix = "throttle:rate:"
	seenKeyPrefix = "throttle:seen:"
)

// RedisThrottle implements SubmissionThrottle on Redis so limits hold across
// replicas.
type RedisThrottle struct {
	client *redisclient.Client
}

// NewRedisThrottle creates a new Redis-backed throttle
func NewRedisThrottle(client *redisclient.Client) providers.SubmissionThrottle {
	return &RedisThrottle{client: client}
}

// Allow increments the window counter, starting the window on first use
func (t *RedisThrottle) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	rdb := t.client.Client()
	rateKey := rateKeyPrefix + key

	count, err := rdb.Incr(ctx, rateKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := rdb.Expire(ctx, rateKey, window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate window: %w", err)
		}
	}

	if count > int64(limit) {
		ttl, err := rdb.TTL(ctx, rateKey).Result()
		if err != nil || ttl <= 0 {
			ttl = window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}

// Seen reports whether key is remembered
func (t *RedisThrottle) Seen(ctx context.Context, key string) (bool, error) {
	n, err := t.client.Client().Exists(ctx, seenKeyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check submission key: %w", err)
	}
	return n > 0, nil
}

// Remember marks key as seen until window elapses
func (t *RedisThrottle) Remember(ctx context.Context, key string, window time.Duration) error {
	if err := t.client.Client().Set(ctx, seenKeyPrefix+key, "1", window).Err(); err != nil {
		return fmt.Errorf("failed to remember submission key: %w", err)
	}
	return nil
}
