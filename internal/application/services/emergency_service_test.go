package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/entities"
	apperrors "github.com/samasante/backend/pkg/errors"
)

var (
	dakar       = entities.Coordinates{Latitude: 14.7167, Longitude: -17.4677}
	clinicA     = entities.Clinic{Name: "Dakar Medical Center", Phone: "+221330000001", Coordinate: dakar}
	clinicB     = entities.Clinic{Name: "Hopital Principal de Dakar", Phone: "+221330000002", Coordinate: entities.Coordinates{Latitude: 14.6928, Longitude: -17.4467}}
	dakarInput  = entities.LocationInput{Coordinates: &dakar}
	feverReport = entities.EmergencyRequest{Symptoms: "fièvre, frissons, mal de tête", ContactPhone: "+221770000000", Location: dakarInput}
)

type emergencyFixture struct {
	resolver *mockLocationResolver
	triager  *mockEmergencyTriager
	clinics  *mockClinicLocator
}

func newEmergencyFixture() *emergencyFixture {
	f := &emergencyFixture{
		resolver: new(mockLocationResolver),
		triager:  new(mockEmergencyTriager),
		clinics:  new(mockClinicLocator),
	}
	f.resolver.On("Resolve", mock.Anything, dakarInput).Return(dakar, nil)
	return f
}

func (f *emergencyFixture) service(sms *recordingSMSSender) *services.EmergencyService {
	return services.NewEmergencyService(f.resolver, f.triager, f.clinics, sms, nil)
}

func TestEmergencyService_PartialSMSFailureStillCompletes(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, feverReport.Symptoms, dakar).
		Return(&entities.EmergencyDetermination{IsEmergency: true, Reason: "Suspected malaria"}, nil)
	f.clinics.On("GetNearbyClinics", mock.Anything, dakar).Return([]entities.Clinic{clinicA, clinicB}, nil)

	sms := newRecordingSMSSender(map[string]error{clinicB.Phone: errors.New("carrier rejected")})

	sub, err := f.service(sms).Submit(context.Background(), feverReport)
	require.NoError(t, err)

	assert.Equal(t, entities.AlertStateDone, sub.State)
	assert.Equal(t, []entities.AlertState{
		entities.AlertStateIdle,
		entities.AlertStateAwaitingLocation,
		entities.AlertStateAwaitingAssessment,
		entities.AlertStateAlertingClinics,
		entities.AlertStateDone,
	}, sub.Trail)
	require.NotNil(t, sub.Assessment)
	assert.True(t, sub.Assessment.IsEmergency)
	assert.Equal(t, []string{clinicA.Name}, sub.Assessment.ClinicsAlerted)
	assert.NotEmpty(t, sub.ID)

	assert.Equal(t,
		"Emergency alert: Possible malaria case reported near you. Symptoms: fièvre, frissons, mal de tête. Contact: +221770000000.",
		sms.sent[clinicA.Phone],
	)
}

func TestEmergencyService_AlertedClinicsKeepLookupOrder(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).
		Return(&entities.EmergencyDetermination{IsEmergency: true, Reason: "Suspected malaria"}, nil)

	var clinics []entities.Clinic
	var want []string
	for _, name := range []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7"} {
		clinics = append(clinics, entities.Clinic{Name: name, Phone: "+22133" + name})
		want = append(want, name)
	}
	clinics = append(clinics, entities.Clinic{Name: "No phone"})
	f.clinics.On("GetNearbyClinics", mock.Anything, dakar).Return(clinics, nil)

	sms := newRecordingSMSSender(nil)
	sub, err := f.service(sms).Submit(context.Background(), feverReport)
	require.NoError(t, err)

	assert.Equal(t, want, sub.Assessment.ClinicsAlerted)
	assert.Equal(t, 7, sms.count())
}

func TestEmergencyService_NonEmergencyShortCircuits(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).
		Return(&entities.EmergencyDetermination{IsEmergency: false, Reason: "Mild cold"}, nil)

	sms := newRecordingSMSSender(nil)
	sub, err := f.service(sms).Submit(context.Background(), feverReport)
	require.NoError(t, err)

	assert.Equal(t, entities.AlertStateDone, sub.State)
	assert.Contains(t, sub.Trail, entities.AlertStateNotEmergency)
	assert.False(t, sub.Assessment.IsEmergency)
	assert.NotNil(t, sub.Assessment.ClinicsAlerted)
	assert.Empty(t, sub.Assessment.ClinicsAlerted)
	f.clinics.AssertNotCalled(t, "GetNearbyClinics", mock.Anything, mock.Anything)
	assert.Equal(t, 0, sms.count())
}

func TestEmergencyService_LocationFailureStopsWorkflow(t *testing.T) {
	f := newEmergencyFixture()
	denied := entities.LocationInput{ErrorCode: entities.GeoCodePermissionDenied}
	f.resolver.On("Resolve", mock.Anything, denied).
		Return(entities.Coordinates{}, &entities.LocationError{Reason: entities.LocationPermissionDenied})

	sub, err := f.service(newRecordingSMSSender(nil)).Submit(context.Background(), entities.EmergencyRequest{Symptoms: "fièvre", Location: denied})

	var locErr *entities.LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, entities.LocationPermissionDenied, locErr.Reason)
	assert.Equal(t, entities.AlertStateFailed, sub.State)
	assert.Equal(t, "permission_denied", sub.Failure)
	assert.Nil(t, sub.Assessment)
	f.triager.AssertNotCalled(t, "AssessEmergency", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmergencyService_TriageFailureFails(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).
		Return(nil, apperrors.NewMalformedResponseError("isEmergency is missing", nil))

	sub, err := f.service(newRecordingSMSSender(nil)).Submit(context.Background(), feverReport)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedResponse))
	assert.Equal(t, entities.AlertStateFailed, sub.State)
	assert.Equal(t, string(apperrors.ErrorTypeMalformedResponse), sub.Failure)
	f.clinics.AssertNotCalled(t, "GetNearbyClinics", mock.Anything, mock.Anything)
}

func TestEmergencyService_NilDeterminationFails(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).Return(nil, nil)

	sub, err := f.service(newRecordingSMSSender(nil)).Submit(context.Background(), feverReport)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedResponse))
	assert.Equal(t, entities.AlertStateFailed, sub.State)
}

func TestEmergencyService_ClinicLookupErrorMeansNoClinics(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).
		Return(&entities.EmergencyDetermination{IsEmergency: true, Reason: "Suspected malaria"}, nil)
	f.clinics.On("GetNearbyClinics", mock.Anything, dakar).Return(nil, errors.New("directory down"))

	sub, err := f.service(newRecordingSMSSender(nil)).Submit(context.Background(), feverReport)
	require.NoError(t, err)
	assert.Equal(t, entities.AlertStateDone, sub.State)
	assert.True(t, sub.Assessment.IsEmergency)
	assert.Empty(t, sub.Assessment.ClinicsAlerted)
}

func TestEmergencyService_MissingContactIsStated(t *testing.T) {
	f := newEmergencyFixture()
	f.triager.On("AssessEmergency", mock.Anything, mock.Anything, dakar).
		Return(&entities.EmergencyDetermination{IsEmergency: true, Reason: "Suspected malaria"}, nil)
	f.clinics.On("GetNearbyClinics", mock.Anything, dakar).Return([]entities.Clinic{clinicA}, nil)

	sms := newRecordingSMSSender(nil)
	req := feverReport
	req.ContactPhone = ""
	_, err := f.service(sms).Submit(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sms.sent[clinicA.Phone], "Contact: not provided."))
}

func TestEmergencyService_MissingTriagerIsConfigurationAbsent(t *testing.T) {
	f := newEmergencyFixture()
	svc := services.NewEmergencyService(f.resolver, nil, f.clinics, newRecordingSMSSender(nil), nil)

	sub, err := svc.Submit(context.Background(), feverReport)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfigurationAbsent))
	assert.Equal(t, entities.AlertStateFailed, sub.State)
}

func TestEmergencyService_RequiresSymptoms(t *testing.T) {
	f := newEmergencyFixture()

	sub, err := f.service(newRecordingSMSSender(nil)).Submit(context.Background(), entities.EmergencyRequest{Symptoms: "  ", Location: dakarInput})
	assert.Nil(t, sub)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}
