package handlers

import (
	"context"
	"net/http"

	"github.com/samasante/backend/internal/domain/entities"
)

// HealthAssessmentService defines the assessment used by the handler
type HealthAssessmentService interface {
	Assess(ctx context.Context, message, language string) (*entities.HealthAssessment, error)
}

// AssessmentHandler handles free-text health questions
type AssessmentHandler struct {
	service HealthAssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service HealthAssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

type assessmentRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// Assess handles POST /api/assessment
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var payload assessmentRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Assess(r.Context(), payload.Message, payload.Language)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
