package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/infrastructure/observability"
	apperrors "github.com/samasante/backend/pkg/errors"
)

const defaultRemedyLanguage = "fr"

// RemedySearcher defines the remedy search used by the handler
type RemedySearcher interface {
	Search(ctx context.Context, symptom, language string) (*services.RemedySearchResult, error)
}

// ImageResolver defines the image lookup used by the handler
type ImageResolver interface {
	ResolveImage(ctx context.Context, remedy entities.Remedy) (string, bool)
}

// CacheClearer empties the remedy cache
type CacheClearer interface {
	Clear(ctx context.Context) error
}

// RemedyHandler handles remedy search and image requests
type RemedyHandler struct {
	remedies RemedySearcher
	images   ImageResolver
	cache    CacheClearer
}

// NewRemedyHandler creates a new remedy handler. cache may be nil.
func NewRemedyHandler(remedies RemedySearcher, images ImageResolver, cache CacheClearer) *RemedyHandler {
	return &RemedyHandler{
		remedies: remedies,
		images:   images,
		cache:    cache,
	}
}

type remedyListResponse struct {
	Remedies  []entities.Remedy     `json:"remedies"`
	Origin    entities.RemedyOrigin `json:"origin"`
	Notice    string                `json:"notice,omitempty"`
	Kind      string                `json:"kind,omitempty"`
	Retryable bool                  `json:"retryable,omitempty"`
}

// GetRemedies handles GET /api/remedies?symptom=&lang=
func (h *RemedyHandler) GetRemedies(w http.ResponseWriter, r *http.Request) {
	symptom := r.URL.Query().Get("symptom")
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = defaultRemedyLanguage
	}

	result, err := h.remedies.Search(r.Context(), symptom, lang)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			respondWithAppError(w, err)
			return
		}
		// The list stays usable; the client shows the notice instead.
		observability.LoggerFromContext(r.Context()).Warn().
			Err(err).
			Str("symptom", symptom).
			Msg("Remedy search failed")
		respondWithJSON(w, http.StatusOK, remedyListResponse{
			Remedies:  []entities.Remedy{},
			Origin:    entities.RemedyOriginNone,
			Notice:    remedyNotice(err),
			Kind:      string(apperrors.TypeOf(err)),
			Retryable: apperrors.Retryable(err),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, remedyListResponse{
		Remedies: result.Remedies,
		Origin:   result.Origin,
	})
}

func remedyNotice(err error) string {
	if apperrors.IsType(err, apperrors.ErrorTypeConfigurationAbsent) {
		return "Remedy suggestions are not available right now."
	}
	return "We could not suggest remedies for this symptom. Please try again."
}

type imageRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Symptom     string `json:"symptom"`
	ImageURL    string `json:"imageUrl"`
}

type imageResponse struct {
	ImageURL *string `json:"imageUrl"`
}

// ResolveImage handles POST /api/remedies/image
func (h *RemedyHandler) ResolveImage(w http.ResponseWriter, r *http.Request) {
	var payload imageRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Name) == "" && strings.TrimSpace(payload.Symptom) == "" {
		respondWithError(w, http.StatusBadRequest, "name or symptom is required")
		return
	}

	url, ok := h.images.ResolveImage(r.Context(), entities.Remedy{
		Name:        payload.Name,
		Description: payload.Description,
		Symptom:     payload.Symptom,
		ImageURL:    payload.ImageURL,
	})

	resp := imageResponse{}
	if ok {
		resp.ImageURL = &url
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// ClearCache handles DELETE /api/admin/remedies/cache
func (h *RemedyHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		respondWithAppError(w, apperrors.NewConfigurationAbsentError("remedy cache is not configured"))
		return
	}
	if err := h.cache.Clear(r.Context()); err != nil {
		respondWithAppError(w, apperrors.NewInternalError("failed to clear remedy cache", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
