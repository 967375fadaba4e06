package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samasante/backend/internal/domain/entities"
	apperrors "github.com/samasante/backend/pkg/errors"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Retryable bool   `json:"retryable"`
	Reason    string `json:"reason,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithError answers a request rejected before reaching a service
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	body := errorResponse{
		Error: message,
		Kind:  string(apperrors.ErrorTypeValidation),
	}
	if statusCode == http.StatusTooManyRequests {
		body.Kind = "RATE_LIMITED"
		body.Retryable = true
	}
	respondWithJSON(w, statusCode, body)
}

// respondWithAppError maps a service error onto a status code and body
func respondWithAppError(w http.ResponseWriter, err error) {
	statusCode, body := describeError(err)
	respondWithJSON(w, statusCode, body)
}

func describeError(err error) (int, errorResponse) {
	var locErr *entities.LocationError
	if errors.As(err, &locErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:     "location unavailable",
			Kind:      "LOCATION",
			Retryable: locErr.Retryable(),
			Reason:    string(locErr.Reason),
		}
	}

	kind := apperrors.TypeOf(err)
	body := errorResponse{
		Kind:      string(kind),
		Retryable: apperrors.Retryable(err),
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body.Error = appErr.Message
	}

	switch kind {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest, body
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound, body
	case apperrors.ErrorTypeConfigurationAbsent:
		body.Error = "feature unavailable"
		return http.StatusServiceUnavailable, body
	case apperrors.ErrorTypeUpstream, apperrors.ErrorTypeMalformedResponse:
		body.Error = "upstream service failed, please try again"
		return http.StatusBadGateway, body
	default:
		body.Error = "internal server error"
		return http.StatusInternalServerError, body
	}
}

// decodeJSON reads a bounded JSON body into out
func decodeJSON(w http.ResponseWriter, r *http.Request, out interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	return json.NewDecoder(r.Body).Decode(out)
}

const maxRequestBodyBytes = 64 << 10
