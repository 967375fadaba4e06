package providers

import (
	"context"
	"time"
)

// SubmissionThrottle rate-limits and de-duplicates user submissions
type SubmissionThrottle interface {
	// Allow counts one request against key and reports whether it is within
	// limit for the window, and how long the caller should wait otherwise.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)

	// Seen reports whether key was remembered and has not expired
	Seen(ctx context.Context, key string) (bool, error)

	// Remember marks key as seen for window
	Remember(ctx context.Context, key string, window time.Duration) error
}
