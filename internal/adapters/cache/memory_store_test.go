package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/internal/domain/entities"
)

func TestMemoryStore_RoundTripAndIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "toux|fr")
	require.NoError(t, err)
	assert.False(t, ok)

	original := []entities.Remedy{{Name: "Miel et citron", Symptom: "toux"}}
	require.NoError(t, store.Set(ctx, "toux|fr", original))
	original[0].Name = "mutated"

	got, ok, err := store.Get(ctx, "toux|fr")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Miel et citron", got[0].Name)

	got[0].Name = "mutated again"
	again, _, _ := store.Get(ctx, "toux|fr")
	assert.Equal(t, "Miel et citron", again[0].Name)
}

func TestMemoryStore_EmptyEntryIsAHit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "rare|fr", nil))
	got, ok, err := store.Get(ctx, "rare|fr")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a|fr", []entities.Remedy{{Name: "A"}}))
	require.NoError(t, store.Clear(ctx))

	_, ok, err := store.Get(ctx, "a|fr")
	require.NoError(t, err)
	assert.False(t, ok)
}
