package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/internal/api/handlers"
	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/entities"
	apperrors "github.com/samasante/backend/pkg/errors"
)

func TestRemedyHandler_GetRemedies(t *testing.T) {
	searcher := &stubRemedySearcher{result: &services.RemedySearchResult{
		Remedies: []entities.Remedy{{Name: "Kinkeliba", Description: "Tisane", Symptom: "fièvre"}},
		Origin:   entities.RemedyOriginCatalog,
	}}
	handler := handlers.NewRemedyHandler(searcher, &stubImageResolver{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/remedies?symptom=fi%C3%A8vre&lang=wo", nil)
	w := httptest.NewRecorder()
	handler.GetRemedies(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fièvre", searcher.gotSymptom)
	assert.Equal(t, "wo", searcher.gotLanguage)

	var response struct {
		Remedies []entities.Remedy `json:"remedies"`
		Origin   string            `json:"origin"`
		Notice   string            `json:"notice"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "catalog", response.Origin)
	require.Len(t, response.Remedies, 1)
	assert.Equal(t, "Kinkeliba", response.Remedies[0].Name)
	assert.Empty(t, response.Notice)
}

func TestRemedyHandler_GetRemedies_DefaultsLanguage(t *testing.T) {
	searcher := &stubRemedySearcher{result: &services.RemedySearchResult{Remedies: []entities.Remedy{}, Origin: entities.RemedyOriginNone}}
	handler := handlers.NewRemedyHandler(searcher, &stubImageResolver{}, nil)

	w := httptest.NewRecorder()
	handler.GetRemedies(w, httptest.NewRequest(http.MethodGet, "/api/remedies", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fr", searcher.gotLanguage)
}

func TestRemedyHandler_GetRemedies_GenerationFailureGivesNotice(t *testing.T) {
	searcher := &stubRemedySearcher{err: apperrors.NewMalformedResponseError("generatedRemedies is missing", nil)}
	handler := handlers.NewRemedyHandler(searcher, &stubImageResolver{}, nil)

	w := httptest.NewRecorder()
	handler.GetRemedies(w, httptest.NewRequest(http.MethodGet, "/api/remedies?symptom=xyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []interface{}{}, response["remedies"])
	assert.Equal(t, "none", response["origin"])
	assert.NotEmpty(t, response["notice"])
	assert.Equal(t, "MALFORMED_RESPONSE", response["kind"])
	assert.Equal(t, true, response["retryable"])
}

func TestRemedyHandler_GetRemedies_ValidationIsBadRequest(t *testing.T) {
	searcher := &stubRemedySearcher{err: apperrors.NewValidationError("symptom is too long")}
	handler := handlers.NewRemedyHandler(searcher, &stubImageResolver{}, nil)

	w := httptest.NewRecorder()
	handler.GetRemedies(w, httptest.NewRequest(http.MethodGet, "/api/remedies?symptom="+strings.Repeat("a", 400), nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemedyHandler_ResolveImage(t *testing.T) {
	resolver := &stubImageResolver{url: "https://images.pexels.com/ginger.jpeg", ok: true}
	handler := handlers.NewRemedyHandler(&stubRemedySearcher{}, resolver, nil)

	body := `{"name":"Gingembre","description":"Infusion","symptom":"toux"}`
	w := httptest.NewRecorder()
	handler.ResolveImage(w, httptest.NewRequest(http.MethodPost, "/api/remedies/image", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gingembre", resolver.got.Name)
	assert.JSONEq(t, `{"imageUrl":"https://images.pexels.com/ginger.jpeg"}`, w.Body.String())
}

func TestRemedyHandler_ResolveImage_NotFoundIsNull(t *testing.T) {
	handler := handlers.NewRemedyHandler(&stubRemedySearcher{}, &stubImageResolver{}, nil)

	w := httptest.NewRecorder()
	handler.ResolveImage(w, httptest.NewRequest(http.MethodPost, "/api/remedies/image", strings.NewReader(`{"name":"Repos"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imageUrl":null}`, w.Body.String())
}

func TestRemedyHandler_ResolveImage_BadPayload(t *testing.T) {
	handler := handlers.NewRemedyHandler(&stubRemedySearcher{}, &stubImageResolver{}, nil)

	for _, body := range []string{`{`, `{"description":"only"}`} {
		w := httptest.NewRecorder()
		handler.ResolveImage(w, httptest.NewRequest(http.MethodPost, "/api/remedies/image", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestRemedyHandler_ClearCache(t *testing.T) {
	clearer := &stubCacheClearer{}
	handler := handlers.NewRemedyHandler(&stubRemedySearcher{}, &stubImageResolver{}, clearer)

	w := httptest.NewRecorder()
	handler.ClearCache(w, httptest.NewRequest(http.MethodDelete, "/api/admin/remedies/cache", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, clearer.cleared)

	clearer.err = errors.New("redis down")
	w = httptest.NewRecorder()
	handler.ClearCache(w, httptest.NewRequest(http.MethodDelete, "/api/admin/remedies/cache", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
