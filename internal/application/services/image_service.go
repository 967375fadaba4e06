package services

import (
	"context"
	"strings"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

// Image lookup outcomes recorded per provider
const (
	imageOutcomeFound   = "found"
	imageOutcomeEmpty   = "empty"
	imageOutcomeError   = "error"
	imageOutcomeSkipped = "skipped"
)

// ImageService resolves a display image for a remedy by trying stock-photo
// providers in order. It never fails; no image is a normal outcome.
type ImageService struct {
	providers []providers.ImageProvider
	metrics   *observability.Metrics
}

// NewImageService creates an image service over providers in priority order
func NewImageService(metrics *observability.Metrics, imageProviders ...providers.ImageProvider) *ImageService {
	return &ImageService{
		providers: imageProviders,
		metrics:   metrics,
	}
}

// ResolveImage returns the remedy's own image when it has one, otherwise the
// first provider hit for its derived query.
func (s *ImageService) ResolveImage(ctx context.Context, remedy entities.Remedy) (string, bool) {
	if url := strings.TrimSpace(remedy.ImageURL); url != "" {
		return url, true
	}

	query := strings.TrimSpace(DeriveImageQuery(remedy))
	if query == "" {
		return "", false
	}
	return s.search(ctx, query)
}

func (s *ImageService) search(ctx context.Context, query string) (string, bool) {
	logger := observability.LoggerFromContext(ctx)

	for _, p := range s.providers {
		if !p.Configured() {
			logger.Warn().Str("provider", p.Name()).Msg("Image provider credentials missing, skipping")
			s.metrics.RecordImageLookup(ctx, p.Name(), imageOutcomeSkipped)
			continue
		}

		url, err := p.SearchImage(ctx, query)
		if err != nil {
			logger.Warn().Err(err).Str("provider", p.Name()).Str("query", query).Msg("Image provider lookup failed")
			s.metrics.RecordImageLookup(ctx, p.Name(), imageOutcomeError)
			continue
		}
		if url == "" {
			logger.Info().Str("provider", p.Name()).Str("query", query).Msg("Image provider returned no results")
			s.metrics.RecordImageLookup(ctx, p.Name(), imageOutcomeEmpty)
			continue
		}

		s.metrics.RecordImageLookup(ctx, p.Name(), imageOutcomeFound)
		return url, true
	}

	logger.Info().Str("query", query).Msg("No image found for remedy")
	return "", false
}
