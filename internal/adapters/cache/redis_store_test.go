package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/internal/domain/entities"
	redisclient "github.com/samasante/backend/internal/infrastructure/clients/redis"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &RedisStore{client: redisclient.NewFromRedis(rdb)}, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	_, ok, err := store.Get(ctx, "fièvre|fr")
	require.NoError(t, err)
	assert.False(t, ok)

	remedies := []entities.Remedy{{Name: "Kinkeliba", Description: "Tisane", Symptom: "fièvre", ImageURL: "https://img/k.jpg"}}
	require.NoError(t, store.Set(ctx, "fièvre|fr", remedies))
	assert.True(t, mr.Exists("remedies:v1:fièvre|fr"))
	assert.Equal(t, 0, int(mr.TTL("remedies:v1:fièvre|fr")))

	got, ok, err := store.Get(ctx, "fièvre|fr")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, remedies, got)
}

func TestRedisStore_EmptyEntryIsAHit(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "rare|fr", nil))
	got, ok, err := store.Get(ctx, "rare|fr")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestRedisStore_ClearOnlyTouchesRemedyKeys(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, mr.Set("sessions:abc", "keep"))
	require.NoError(t, store.Set(ctx, "a|fr", []entities.Remedy{{Name: "A"}}))
	require.NoError(t, store.Set(ctx, "b|en", []entities.Remedy{{Name: "B"}}))

	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("remedies:v1:a|fr"))
	assert.False(t, mr.Exists("remedies:v1:b|en"))
	assert.True(t, mr.Exists("sessions:abc"))
}

func TestRedisStore_UnavailableServerReturnsError(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, _, err := store.Get(ctx, "toux|fr")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "toux|fr", nil))
}
