package entities

import "fmt"

// EmergencyAssessment is the terminal result of an emergency alert submission
type EmergencyAssessment struct {
	IsEmergency    bool     `json:"isEmergency"`
	Reason         string   `json:"reason"`
	ClinicsAlerted []string `json:"clinicsAlerted"`
}

// EmergencyDetermination is the triage model's answer
type EmergencyDetermination struct {
	IsEmergency bool
	Reason      string
}

// AlertState is a step of the emergency alert workflow
type AlertState string

const (
	AlertStateIdle               AlertState = "idle"
	AlertStateAwaitingLocation   AlertState = "awaiting_location"
	AlertStateAwaitingAssessment AlertState = "awaiting_assessment"
	AlertStateNotEmergency       AlertState = "not_emergency"
	AlertStateAlertingClinics    AlertState = "alerting_clinics"
	AlertStateDone               AlertState = "done"
	AlertStateFailed             AlertState = "failed"
)

// Terminal reports whether no further transition can happen
func (s AlertState) Terminal() bool {
	return s == AlertStateDone || s == AlertStateFailed
}

// LocationFailureReason classifies why a position could not be acquired
type LocationFailureReason string

const (
	LocationPermissionDenied    LocationFailureReason = "permission_denied"
	LocationPositionUnavailable LocationFailureReason = "position_unavailable"
	LocationTimeout             LocationFailureReason = "timeout"
	LocationUnsupported         LocationFailureReason = "unsupported"
)

// LocationError is returned when location acquisition fails
type LocationError struct {
	Reason LocationFailureReason
	Err    error
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("location unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("location unavailable (%s)", e.Reason)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Retryable reports whether asking again may succeed without user action
func (e *LocationError) Retryable() bool {
	return e.Reason == LocationTimeout || e.Reason == LocationPositionUnavailable
}

// Browser Geolocation API error codes
const (
	GeoCodePermissionDenied    = 1
	GeoCodePositionUnavailable = 2
	GeoCodeTimeout             = 3
)

// LocationInput is what the client could tell us about its position: either
// coordinates, a browser geolocation error code, or a free-form address.
type LocationInput struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ErrorCode   int          `json:"errorCode,omitempty"`
	Address     string       `json:"address,omitempty"`
}

// EmergencyAlertTemplate is the SMS sent to each nearby clinic
const EmergencyAlertTemplate = "Emergency alert: Possible malaria case reported near you. Symptoms: %s. Contact: %s."

// EmergencyRequest is one user report submitted to the alert workflow
type EmergencyRequest struct {
	Symptoms     string        `json:"symptoms"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	Location     LocationInput `json:"location"`
}

// Submission tracks one run of the emergency alert workflow
type Submission struct {
	ID         string               `json:"id"`
	State      AlertState           `json:"state"`
	Trail      []AlertState         `json:"trail"`
	Assessment *EmergencyAssessment `json:"assessment,omitempty"`
	Failure    string               `json:"failure,omitempty"`
}

// NewSubmission starts a submission in the idle state
func NewSubmission(id string) *Submission {
	return &Submission{
		ID:    id,
		State: AlertStateIdle,
		Trail: []AlertState{AlertStateIdle},
	}
}

// Advance moves to the next state. Terminal submissions do not move.
func (s *Submission) Advance(next AlertState) {
	if s.State.Terminal() {
		return
	}
	s.State = next
	s.Trail = append(s.Trail, next)
}

// Fail moves the submission to the failed state with a reason
func (s *Submission) Fail(reason string) {
	if s.State.Terminal() {
		return
	}
	s.Failure = reason
	s.Advance(AlertStateFailed)
}
