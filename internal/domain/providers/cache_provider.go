package providers

import (
	"context"

	"github.com/samasante/backend/internal/domain/entities"
)

// RemedyStore is the keyed store behind the remedy cache layer.
// Entries never expire.
type RemedyStore interface {
	// Get returns the entry for key and whether it was present
	Get(ctx context.Context, key string) ([]entities.Remedy, bool, error)

	// Set stores an entry; an empty slice is a valid entry
	Set(ctx context.Context, key string, remedies []entities.Remedy) error

	// Clear removes every entry
	Clear(ctx context.Context) error
}
