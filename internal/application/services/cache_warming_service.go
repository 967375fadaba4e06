package services

import (
	"context"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

// commonSymptoms are the searches users make most, warmed at startup
var commonSymptoms = []string{"", "toux", "fièvre", "mal de tête", "diarrhée", "fatigue", "digestion", "peau", "sommeil", "stress"}

var warmLanguages = []string{entities.LangFrench, entities.LangEnglish, entities.LangWolof}

// CacheWarmingService preloads the remedy cache for frequent searches
type CacheWarmingService struct {
	cache    RemedyLookup
	symptoms []string
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(cache RemedyLookup) *CacheWarmingService {
	return &CacheWarmingService{
		cache:    cache,
		symptoms: commonSymptoms,
	}
}

// WarmCache fetches every common (symptom, language) pair once. Failures are
// logged and skipped; they are retried on the next real request.
func (s *CacheWarmingService) WarmCache(ctx context.Context) int {
	logger := observability.LoggerFromContext(ctx)
	logger.Info().Msg("Starting remedy cache warming")

	warmed := 0
	for _, lang := range warmLanguages {
		for _, symptom := range s.symptoms {
			if ctx.Err() != nil {
				logger.Warn().Err(ctx.Err()).Int("warmed", warmed).Msg("Remedy cache warming interrupted")
				return warmed
			}
			if _, err := s.cache.GetRemedies(ctx, symptom, lang); err != nil {
				logger.Warn().Err(err).Str("symptom", symptom).Str("language", lang).Msg("Failed to warm remedy cache entry")
				continue
			}
			warmed++
		}
	}

	logger.Info().Int("warmed", warmed).Msg("Remedy cache warming completed")
	return warmed
}
