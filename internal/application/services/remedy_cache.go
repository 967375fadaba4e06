package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

// RemedyCache memoizes the remedy source per (symptom, language). Entries
// never expire; Clear is the only way to drop them.
type RemedyCache struct {
	source  providers.RemedySource
	store   providers.RemedyStore
	metrics *observability.Metrics
	flights singleflight.Group

	// generation is bumped by Clear. Flights started under an older
	// generation neither share with newer callers nor write to the store.
	mu         sync.RWMutex
	generation uint64
}

// NewRemedyCache creates a new remedy cache. metrics may be nil.
func NewRemedyCache(source providers.RemedySource, store providers.RemedyStore, metrics *observability.Metrics) *RemedyCache {
	return &RemedyCache{
		source:  source,
		store:   store,
		metrics: metrics,
	}
}

// CacheKey derives the store key. Both parts are trimmed and lower-cased so
// "Fever" and " fever" share one entry.
func CacheKey(symptom, language string) string {
	return normalizeKeyPart(symptom) + "|" + normalizeKeyPart(language)
}

func normalizeKeyPart(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// GetRemedies returns the cached list for the pair, calling the source at
// most once per key in this process until Clear.
func (c *RemedyCache) GetRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	key := CacheKey(symptom, language)

	if remedies, ok := c.lookup(ctx, key); ok {
		c.metrics.RecordCacheLookup(ctx, true)
		return remedies, nil
	}
	c.metrics.RecordCacheLookup(ctx, false)

	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	// The flight outlives any single caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	flightKey := key + "#" + strconv.FormatUint(generation, 10)
	v, err, shared := c.flights.Do(flightKey, func() (interface{}, error) {
		if remedies, ok := c.lookup(flightCtx, key); ok {
			return remedies, nil
		}

		remedies, err := c.source.FetchRemedies(flightCtx, normalizeKeyPart(symptom), normalizeKeyPart(language))
		if err != nil {
			return nil, err
		}
		remedies = entities.CloneRemedies(remedies)

		c.storeIfCurrent(flightCtx, generation, key, remedies)
		return remedies, nil
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("cache_key", key).Msg("Remedy source fetch failed")
		return nil, err
	}

	if shared {
		observability.LoggerFromContext(ctx).Debug().Str("cache_key", key).Msg("Joined in-flight remedy fetch")
	}
	return entities.CloneRemedies(v.([]entities.Remedy)), nil
}

func (c *RemedyCache) lookup(ctx context.Context, key string) ([]entities.Remedy, bool) {
	remedies, ok, err := c.store.Get(ctx, key)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("Remedy cache read failed, treating as miss")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return entities.CloneRemedies(remedies), true
}

// storeIfCurrent writes the fetched list unless Clear ran since the fetch began.
func (c *RemedyCache) storeIfCurrent(ctx context.Context, generation uint64, key string, remedies []entities.Remedy) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.generation != generation {
		observability.LoggerFromContext(ctx).Debug().Str("cache_key", key).Msg("Discarding remedies fetched before cache clear")
		return
	}
	if err := c.store.Set(ctx, key, remedies); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("Failed to store remedies in cache")
	}
}

// Clear drops every entry. Fetches already in flight finish for their own
// callers but are not written back.
func (c *RemedyCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	observability.LoggerFromContext(ctx).Info().Msg("Remedy cache cleared")
	return nil
}
