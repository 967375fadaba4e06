package handlers_test

import (
	"context"
	"errors"
	"sync"

	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/entities"
)

type stubRemedySearcher struct {
	result *services.RemedySearchResult
	err    error

	gotSymptom  string
	gotLanguage string
}

func (s *stubRemedySearcher) Search(ctx context.Context, symptom, language string) (*services.RemedySearchResult, error) {
	s.gotSymptom = symptom
	s.gotLanguage = language
	return s.result, s.err
}

type stubImageResolver struct {
	url string
	ok  bool

	got entities.Remedy
}

func (s *stubImageResolver) ResolveImage(ctx context.Context, remedy entities.Remedy) (string, bool) {
	s.got = remedy
	return s.url, s.ok
}

type stubCacheClearer struct {
	cleared int
	err     error
}

func (s *stubCacheClearer) Clear(ctx context.Context) error {
	s.cleared++
	return s.err
}

type stubEmergencySubmitter struct {
	mu    sync.Mutex
	calls int
	run   func(req entities.EmergencyRequest) (*entities.Submission, error)
}

func (s *stubEmergencySubmitter) Submit(ctx context.Context, req entities.EmergencyRequest) (*entities.Submission, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.run == nil {
		return nil, errors.New("not configured")
	}
	return s.run(req)
}

func doneSubmission(clinics ...string) *entities.Submission {
	sub := entities.NewSubmission("sub-1")
	sub.Advance(entities.AlertStateAwaitingLocation)
	sub.Advance(entities.AlertStateAwaitingAssessment)
	sub.Advance(entities.AlertStateAlertingClinics)
	sub.Assessment = &entities.EmergencyAssessment{
		IsEmergency:    true,
		Reason:         "Suspected malaria",
		ClinicsAlerted: append([]string{}, clinics...),
	}
	sub.Advance(entities.AlertStateDone)
	return sub
}

type stubAssessmentService struct {
	result *entities.HealthAssessment
	err    error
}

func (s *stubAssessmentService) Assess(ctx context.Context, message, language string) (*entities.HealthAssessment, error) {
	return s.result, s.err
}
