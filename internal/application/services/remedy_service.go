package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
	apperrors "github.com/samasante/backend/pkg/errors"
)

const maxSymptomLength = 300

// RemedyLookup is the cached catalog lookup used by RemedyService
type RemedyLookup interface {
	GetRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error)
}

// RemedySearchResult is the outcome of a remedy search
type RemedySearchResult struct {
	Remedies []entities.Remedy     `json:"remedies"`
	Origin   entities.RemedyOrigin `json:"origin"`
}

// RemedyService looks remedies up in the catalog and falls back to
// generation when the catalog has nothing for a symptom.
type RemedyService struct {
	catalog   RemedyLookup
	generator providers.RemedyGenerator
}

// NewRemedyService creates a new remedy service. generator may be nil when
// no model credentials are configured.
func NewRemedyService(catalog RemedyLookup, generator providers.RemedyGenerator) *RemedyService {
	return &RemedyService{
		catalog:   catalog,
		generator: generator,
	}
}

// Search returns catalog remedies, or generated ones for a non-empty symptom
// with no catalog match. Generated results are never cached.
func (s *RemedyService) Search(ctx context.Context, symptom, language string) (*RemedySearchResult, error) {
	symptom = strings.TrimSpace(symptom)
	if utf8.RuneCountInString(symptom) > maxSymptomLength {
		return nil, apperrors.NewValidationError("symptom is too long")
	}

	remedies, err := s.catalog.GetRemedies(ctx, symptom, language)
	if err != nil {
		return nil, err
	}
	if len(remedies) > 0 {
		return &RemedySearchResult{Remedies: remedies, Origin: entities.RemedyOriginCatalog}, nil
	}
	if symptom == "" {
		return &RemedySearchResult{Remedies: []entities.Remedy{}, Origin: entities.RemedyOriginNone}, nil
	}

	generated, err := s.generate(ctx, symptom)
	if err != nil {
		return nil, err
	}
	return &RemedySearchResult{Remedies: generated, Origin: entities.RemedyOriginGenerated}, nil
}

func (s *RemedyService) generate(ctx context.Context, symptom string) ([]entities.Remedy, error) {
	if s.generator == nil {
		return nil, apperrors.NewConfigurationAbsentError("remedy generation is not configured")
	}

	ctx, span := observability.StartSpan(ctx, "RemedyService.generate")
	defer span.End()

	raw, err := s.generator.GenerateRemedies(ctx, symptom)
	if err != nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("symptom", symptom).Msg("Remedy generation failed")
		return nil, err
	}

	remedies := make([]entities.Remedy, 0, len(raw))
	for _, r := range raw {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			continue
		}
		if strings.TrimSpace(r.Symptom) == "" {
			r.Symptom = symptom
		}
		r.ImageURL = ""
		r.IsGenerated = true
		remedies = append(remedies, r)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("symptom", symptom).
		Int("count", len(remedies)).
		Msg("Generated remedies for uncatalogued symptom")
	return remedies, nil
}
