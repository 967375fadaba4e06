package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/samasante/backend/internal/domain/entities"
)

type mockRemedySource struct {
	mock.Mock
}

func (m *mockRemedySource) FetchRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	args := m.Called(ctx, symptom, language)
	remedies, _ := args.Get(0).([]entities.Remedy)
	return remedies, args.Error(1)
}

// failingStore simulates a store backend that is down
type failingStore struct {
	getErr error
	setErr error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]entities.Remedy, bool, error) {
	return nil, false, s.getErr
}

func (s *failingStore) Set(ctx context.Context, key string, remedies []entities.Remedy) error {
	return s.setErr
}

func (s *failingStore) Clear(ctx context.Context) error {
	return nil
}

type mockRemedyGenerator struct {
	mock.Mock
}

func (m *mockRemedyGenerator) GenerateRemedies(ctx context.Context, symptom string) ([]entities.Remedy, error) {
	args := m.Called(ctx, symptom)
	remedies, _ := args.Get(0).([]entities.Remedy)
	return remedies, args.Error(1)
}

type mockRemedyLookup struct {
	mock.Mock
}

func (m *mockRemedyLookup) GetRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	args := m.Called(ctx, symptom, language)
	remedies, _ := args.Get(0).([]entities.Remedy)
	return remedies, args.Error(1)
}

type mockImageProvider struct {
	mock.Mock
	name       string
	configured bool
}

func (m *mockImageProvider) Name() string     { return m.name }
func (m *mockImageProvider) Configured() bool { return m.configured }

func (m *mockImageProvider) SearchImage(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

type mockLocationResolver struct {
	mock.Mock
}

func (m *mockLocationResolver) Resolve(ctx context.Context, input entities.LocationInput) (entities.Coordinates, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(entities.Coordinates), args.Error(1)
}

type mockEmergencyTriager struct {
	mock.Mock
}

func (m *mockEmergencyTriager) AssessEmergency(ctx context.Context, symptoms string, at entities.Coordinates) (*entities.EmergencyDetermination, error) {
	args := m.Called(ctx, symptoms, at)
	det, _ := args.Get(0).(*entities.EmergencyDetermination)
	return det, args.Error(1)
}

type mockClinicLocator struct {
	mock.Mock
}

func (m *mockClinicLocator) GetNearbyClinics(ctx context.Context, at entities.Coordinates) ([]entities.Clinic, error) {
	args := m.Called(ctx, at)
	clinics, _ := args.Get(0).([]entities.Clinic)
	return clinics, args.Error(1)
}

// recordingSMSSender fails for the configured phone numbers
type recordingSMSSender struct {
	mu      sync.Mutex
	failFor map[string]error
	sent    map[string]string
}

func newRecordingSMSSender(failFor map[string]error) *recordingSMSSender {
	return &recordingSMSSender{failFor: failFor, sent: make(map[string]string)}
}

func (s *recordingSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failFor[phoneNumber]; ok {
		return err
	}
	s.sent[phoneNumber] = message
	return nil
}

func (s *recordingSMSSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type mockHealthAssessor struct {
	mock.Mock
}

func (m *mockHealthAssessor) AssessHealth(ctx context.Context, message, language string) (*entities.HealthAssessment, error) {
	args := m.Called(ctx, message, language)
	result, _ := args.Get(0).(*entities.HealthAssessment)
	return result, args.Error(1)
}
