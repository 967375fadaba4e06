package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	redisclient "github.com/samasante/backend/internal/infrastructure/clients/redis"
)

const (
	remedyKeyPrefix = "remedies:v1:"
	clearScanCount  = 200
)

// RedisStore implements RemedyStore on Redis so entries survive restarts
// and are shared between replicas.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a new Redis-backed remedy store
func NewRedisStore(client *redisclient.Client) providers.RemedyStore {
	return &RedisStore{client: client}
}

// Get retrieves an entry from Redis
func (s *RedisStore) Get(ctx context.Context, key string) ([]entities.Remedy, bool, error) {
	raw, err := s.client.Client().Get(ctx, remedyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get from cache: %w", err)
	}

	remedies := []entities.Remedy{}
	if err := json.Unmarshal(raw, &remedies); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached remedies: %w", err)
	}
	return remedies, true, nil
}

// Set stores an entry without expiration
func (s *RedisStore) Set(ctx context.Context, key string, remedies []entities.Remedy) error {
	payload, err := json.Marshal(entities.CloneRemedies(remedies))
	if err != nil {
		return fmt.Errorf("failed to encode remedies: %w", err)
	}
	if err := s.client.Client().Set(ctx, remedyKeyPrefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

// Clear deletes every remedy entry, leaving other keys untouched
func (s *RedisStore) Clear(ctx context.Context) error {
	rdb := s.client.Client()
	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, remedyKeyPrefix+"*", clearScanCount).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete from cache: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
