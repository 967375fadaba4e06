package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
	apperrors "github.com/samasante/backend/pkg/errors"
)

const (
	maxConcurrentAlerts = 4
	contactNotProvided  = "not provided"
)

// EmergencyService runs the emergency alert workflow: locate the user,
// triage the symptoms, then text every nearby clinic.
type EmergencyService struct {
	resolver providers.LocationResolver
	triager  providers.EmergencyTriager
	clinics  providers.ClinicLocator
	sms      providers.SMSSender
	metrics  *observability.Metrics
	newID    func() string
}

// NewEmergencyService creates a new emergency service. triager may be nil
// when no model credentials are configured.
func NewEmergencyService(
	resolver providers.LocationResolver,
	triager providers.EmergencyTriager,
	clinics providers.ClinicLocator,
	sms providers.SMSSender,
	metrics *observability.Metrics,
) *EmergencyService {
	return &EmergencyService{
		resolver: resolver,
		triager:  triager,
		clinics:  clinics,
		sms:      sms,
		metrics:  metrics,
		newID:    uuid.NewString,
	}
}

// Submit runs one submission to a terminal state. The returned submission is
// always non-nil once input validation passes; err is set when it failed.
func (s *EmergencyService) Submit(ctx context.Context, req entities.EmergencyRequest) (*entities.Submission, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		return nil, apperrors.NewValidationError("symptoms are required")
	}

	sub := entities.NewSubmission(s.newID())
	ctx, span := observability.StartSpan(ctx, "EmergencyService.Submit")
	defer span.End()
	observability.SetSpanAttributes(span, attribute.String("emergency.submission_id", sub.ID))

	logger := observability.LoggerFromContext(ctx).With().Str("submission_id", sub.ID).Logger()

	sub.Advance(entities.AlertStateAwaitingLocation)
	at, err := s.resolver.Resolve(ctx, req.Location)
	if err != nil {
		logger.Warn().Err(err).Msg("Emergency location unavailable")
		return s.fail(sub, span, err)
	}

	sub.Advance(entities.AlertStateAwaitingAssessment)
	if s.triager == nil {
		return s.fail(sub, span, apperrors.NewConfigurationAbsentError("emergency triage is not configured"))
	}
	determination, err := s.triager.AssessEmergency(ctx, symptoms, at)
	if err != nil {
		logger.Error().Err(err).Msg("Emergency triage failed")
		return s.fail(sub, span, err)
	}
	if determination == nil {
		return s.fail(sub, span, apperrors.NewMalformedResponseError("emergency triage returned no result", nil))
	}

	if !determination.IsEmergency {
		sub.Advance(entities.AlertStateNotEmergency)
		sub.Assessment = &entities.EmergencyAssessment{
			IsEmergency:    false,
			Reason:         determination.Reason,
			ClinicsAlerted: []string{},
		}
		sub.Advance(entities.AlertStateDone)
		logger.Info().Msg("Symptoms triaged as non-emergency")
		return sub, nil
	}

	sub.Advance(entities.AlertStateAlertingClinics)
	clinics := s.nearbyClinics(ctx, at)
	alerted := s.alertClinics(ctx, clinics, symptoms, req.ContactPhone)

	sub.Assessment = &entities.EmergencyAssessment{
		IsEmergency:    true,
		Reason:         determination.Reason,
		ClinicsAlerted: alerted,
	}
	sub.Advance(entities.AlertStateDone)

	observability.SetSpanAttributes(span,
		attribute.Int("emergency.clinics_found", len(clinics)),
		attribute.Int("emergency.clinics_alerted", len(alerted)),
	)
	logger.Info().
		Int("clinics_found", len(clinics)).
		Int("clinics_alerted", len(alerted)).
		Msg("Emergency alert workflow completed")
	return sub, nil
}

func (s *EmergencyService) fail(sub *entities.Submission, span trace.Span, err error) (*entities.Submission, error) {
	observability.RecordError(span, err)
	var locErr *entities.LocationError
	if errors.As(err, &locErr) {
		sub.Fail(string(locErr.Reason))
	} else {
		sub.Fail(string(apperrors.TypeOf(err)))
	}
	return sub, err
}

// nearbyClinics treats a lookup failure as no clinics
func (s *EmergencyService) nearbyClinics(ctx context.Context, at entities.Coordinates) []entities.Clinic {
	if s.clinics == nil {
		return nil
	}
	clinics, err := s.clinics.GetNearbyClinics(ctx, at)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("Clinic lookup failed, alerting no clinics")
		return nil
	}
	return clinics
}

// alertClinics sends one SMS per clinic concurrently and returns the names of
// the clinics that accepted it, in lookup order.
func (s *EmergencyService) alertClinics(ctx context.Context, clinics []entities.Clinic, symptoms, contactPhone string) []string {
	alerted := []string{}
	if len(clinics) == 0 {
		return alerted
	}

	contact := strings.TrimSpace(contactPhone)
	if contact == "" {
		contact = contactNotProvided
	}
	message := fmt.Sprintf(entities.EmergencyAlertTemplate, symptoms, contact)

	delivered := make([]bool, len(clinics))
	var g errgroup.Group
	g.SetLimit(maxConcurrentAlerts)

	for i, clinic := range clinics {
		g.Go(func() error {
			err := s.sendAlert(ctx, clinic, message)
			s.metrics.RecordAlert(ctx, err == nil)
			if err != nil {
				observability.LoggerFromContext(ctx).Warn().
					Err(err).
					Str("clinic", clinic.Name).
					Msg("Failed to alert clinic")
				return nil
			}
			delivered[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for i, clinic := range clinics {
		if delivered[i] {
			alerted = append(alerted, clinic.Name)
		}
	}
	return alerted
}

func (s *EmergencyService) sendAlert(ctx context.Context, clinic entities.Clinic, message string) error {
	if s.sms == nil {
		return apperrors.NewConfigurationAbsentError("sms sender is not configured")
	}
	if strings.TrimSpace(clinic.Phone) == "" {
		return apperrors.NewValidationError("clinic has no phone number")
	}
	return s.sms.Send(ctx, clinic.Phone, message)
}
