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

const maxAssessmentMessageLength = 2000

// AssessmentService produces non-diagnostic health assessments
type AssessmentService struct {
	assessor providers.HealthAssessor
}

// NewAssessmentService creates a new assessment service. assessor may be nil
// when no model credentials are configured.
func NewAssessmentService(assessor providers.HealthAssessor) *AssessmentService {
	return &AssessmentService{assessor: assessor}
}

// Assess validates the request and asks the model for an assessment
func (s *AssessmentService) Assess(ctx context.Context, message, language string) (*entities.HealthAssessment, error) {
	message = strings.TrimSpace(message)
	language = strings.ToLower(strings.TrimSpace(language))

	if message == "" {
		return nil, apperrors.NewValidationError("message is required")
	}
	if utf8.RuneCountInString(message) > maxAssessmentMessageLength {
		return nil, apperrors.NewValidationError("message is too long")
	}
	if language == "" {
		language = entities.AssessmentLangFrench
	}
	if !entities.ValidAssessmentLanguage(language) {
		return nil, apperrors.NewValidationError("language must be one of wolof, french, pulaar, franco-wolof")
	}
	if s.assessor == nil {
		return nil, apperrors.NewConfigurationAbsentError("health assessment is not configured")
	}

	ctx, span := observability.StartSpan(ctx, "AssessmentService.Assess")
	defer span.End()

	assessment, err := s.assessor.AssessHealth(ctx, message, language)
	if err != nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("language", language).Msg("Health assessment failed")
		return nil, err
	}
	if assessment == nil {
		return nil, apperrors.NewMalformedResponseError("health assessment returned no result", nil)
	}
	if assessment.TraditionalRemedies == nil {
		assessment.TraditionalRemedies = []entities.RemedyDetail{}
	}
	return assessment, nil
}
