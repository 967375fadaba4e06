package cache

import (
	"context"
	"sync"
	"time"

	"github.com/samasante/backend/internal/domain/providers"
)

// MemoryThrottle is a process-local SubmissionThrottle
type MemoryThrottle struct {
	mu      sync.Mutex
	states  map[string]*rateState
	entries map[string]time.Time
	now     func() time.Time

	nextSweep time.Time
}

const throttleSweepInterval = time.Minute

type rateState struct {
	count   int
	resetAt time.Time
}

// NewMemoryThrottle creates a new in-memory throttle
func NewMemoryThrottle() providers.SubmissionThrottle {
	return newMemoryThrottle(time.Now)
}

func newMemoryThrottle(now func() time.Time) *MemoryThrottle {
	return &MemoryThrottle{
		states:  make(map[string]*rateState),
		entries: make(map[string]time.Time),
		now:     now,
	}
}

// Allow implements a fixed-window counter per key
func (t *MemoryThrottle) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweep(now)

	state, ok := t.states[key]
	if !ok || now.After(state.resetAt) {
		state = &rateState{resetAt: now.Add(window)}
		t.states[key] = state
	}

	if state.count >= limit {
		retryAfter := state.resetAt.Sub(now)
		if retryAfter <= 0 {
			retryAfter = window
		}
		return false, retryAfter, nil
	}

	state.count++
	return true, 0, nil
}

// Seen reports whether key is remembered
func (t *MemoryThrottle) Seen(ctx context.Context, key string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	expiresAt, ok := t.entries[key]
	if !ok {
		return false, nil
	}
	if !t.now().Before(expiresAt) {
		delete(t.entries, key)
		return false, nil
	}
	return true, nil
}

// Remember marks key as seen until window elapses
func (t *MemoryThrottle) Remember(ctx context.Context, key string, window time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = t.now().Add(window)
	return nil
}

// sweep drops expired windows and entries, at most once per interval
func (t *MemoryThrottle) sweep(now time.Time) {
	if now.Before(t.nextSweep) {
		return
	}
	t.nextSweep = now.Add(throttleSweepInterval)

	for key, state := range t.states {
		if now.After(state.resetAt) {
			delete(t.states, key)
		}
	}
	for key, expiresAt := range t.entries {
		if !now.Before(expiresAt) {
			delete(t.entries, key)
		}
	}
}
