package providers

import (
	"context"

	"github.com/samasante/backend/internal/domain/entities"
)

// RemedySource provides the canonical, non-generated remedy dataset.
// An empty symptom asks for popular remedies.
type RemedySource interface {
	FetchRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error)
}
