package providers

import (
	"context"

	"github.com/samasante/backend/internal/domain/entities"
)

// RemedyGenerator synthesizes remedies when the catalog has none.
type RemedyGenerator interface {
	GenerateRemedies(ctx context.Context, symptom string) ([]entities.Remedy, error)
}

// HealthAssessor produces a non-diagnostic assessment for a user message.
type HealthAssessor interface {
	AssessHealth(ctx context.Context, message, language string) (*entities.HealthAssessment, error)
}

// EmergencyTriager decides whether reported symptoms are an emergency.
type EmergencyTriager interface {
	AssessEmergency(ctx context.Context, symptoms string, at entities.Coordinates) (*entities.EmergencyDetermination, error)
}
