package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samasante/backend/internal/adapters/cache"
	"github.com/samasante/backend/internal/adapters/source"
	"github.com/samasante/backend/internal/api/handlers"
	"github.com/samasante/backend/internal/api/routes"
	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/entities"
)

type noopSubmitter struct{}

func (noopSubmitter) Submit(ctx context.Context, req entities.EmergencyRequest) (*entities.Submission, error) {
	return entities.NewSubmission("x"), nil
}

func newTestRouter() http.Handler {
	remedyCache := services.NewRemedyCache(source.NewStaticSource(), cache.NewMemoryStore(), nil)
	remedyHandler := handlers.NewRemedyHandler(
		services.NewRemedyService(remedyCache, nil),
		services.NewImageService(nil),
		remedyCache,
	)
	return routes.NewRouter(
		remedyHandler,
		handlers.NewEmergencyHandler(noopSubmitter{}, cache.NewMemoryThrottle()),
		handlers.NewAssessmentHandler(services.NewAssessmentService(nil)),
		nil,
	).SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CatalogRemedies(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/remedies?symptom=toux&lang=fr", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"origin":"catalog"`)
}

func TestRouter_GenerationWithoutKeyGivesNotice(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/remedies?symptom=zzzz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"CONFIGURATION_ABSENT"`)
}

func TestRouter_AssessmentWithoutKeyIsUnavailable(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assessment", strings.NewReader(`{"message":"toux"}`))
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emergency", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
