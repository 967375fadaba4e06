package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

const (
	emergencyRateLimit   = 5
	emergencyRateWindow  = time.Hour
	emergencyDedupWindow = 10 * time.Minute
)

// EmergencySubmitter defines the alert workflow used by the handler
type EmergencySubmitter interface {
	Submit(ctx context.Context, req entities.EmergencyRequest) (*entities.Submission, error)
}

// EmergencyHandler handles emergency alert submissions
type EmergencyHandler struct {
	service  EmergencySubmitter
	throttle providers.SubmissionThrottle
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(service EmergencySubmitter, throttle providers.SubmissionThrottle) *EmergencyHandler {
	return &EmergencyHandler{
		service:  service,
		throttle: throttle,
	}
}

type emergencyFailureResponse struct {
	errorResponse
	Submission *entities.Submission `json:"submission,omitempty"`
}

// SubmitEmergency handles POST /api/emergency
func (h *EmergencyHandler) SubmitEmergency(w http.ResponseWriter, r *http.Request) {
	var payload entities.EmergencyRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Symptoms = strings.TrimSpace(payload.Symptoms)
	payload.ContactPhone = strings.TrimSpace(payload.ContactPhone)
	if payload.Symptoms == "" {
		respondWithError(w, http.StatusBadRequest, "symptoms are required")
		return
	}
	if len(payload.Symptoms) > 1000 {
		respondWithError(w, http.StatusBadRequest, "symptoms are too long")
		return
	}
	if len(payload.ContactPhone) > 32 {
		respondWithError(w, http.StatusBadRequest, "contact phone is too long")
		return
	}

	ctx := r.Context()
	ip := clientIP(r)

	// Ignored duplicates do not count against the rate budget.
	dupKey := "emergency:" + emergencyFingerprint(payload, ip)
	if h.isDuplicate(ctx, dupKey) {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"status": "duplicate_ignored",
		})
		return
	}

	allowed, retryAfter := h.allowRequest(ctx, "emergency:"+ip)
	if !allowed {
		w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	submission, err := h.service.Submit(ctx, payload)
	if err != nil {
		statusCode, body := describeError(err)
		respondWithJSON(w, statusCode, emergencyFailureResponse{
			errorResponse: body,
			Submission:    submission,
		})
		return
	}

	h.remember(ctx, dupKey)
	respondWithJSON(w, http.StatusOK, submission)
}

// allowRequest fails open when the throttle backend is unavailable
func (h *EmergencyHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.throttle == nil {
		return true, 0
	}
	allowed, retryAfter, err := h.throttle.Allow(ctx, key, emergencyRateLimit, emergencyRateWindow)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Emergency rate limit check failed")
		return true, 0
	}
	return allowed, retryAfter
}

// retryAfterSeconds rounds up so clients never see a zero delay
func retryAfterSeconds(d time.Duration) string {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

func (h *EmergencyHandler) isDuplicate(ctx context.Context, key string) bool {
	if h.throttle == nil {
		return false
	}
	seen, err := h.throttle.Seen(ctx, key)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Emergency duplicate check failed")
		return false
	}
	return seen
}

func (h *EmergencyHandler) remember(ctx context.Context, key string) {
	if h.throttle == nil {
		return
	}
	if err := h.throttle.Remember(ctx, key, emergencyDedupWindow); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to remember emergency submission")
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func emergencyFingerprint(payload entities.EmergencyRequest, ip string) string {
	normalized := []string{
		strings.Join(strings.Fields(strings.ToLower(payload.Symptoms)), " "),
		payload.ContactPhone,
		ip,
	}

	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}
