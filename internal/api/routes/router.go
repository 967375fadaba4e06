package routes

import (
	"net/http"

	"github.com/samasante/backend/internal/api/handlers"
	"github.com/samasante/backend/internal/api/middleware"
	"github.com/samasante/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	remedyHandler     *handlers.RemedyHandler
	emergencyHandler  *handlers.EmergencyHandler
	assessmentHandler *handlers.AssessmentHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	remedyHandler *handlers.RemedyHandler,
	emergencyHandler *handlers.EmergencyHandler,
	assessmentHandler *handlers.AssessmentHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		remedyHandler:     remedyHandler,
		emergencyHandler:  emergencyHandler,
		assessmentHandler: assessmentHandler,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Remedy endpoints
	r.mux.HandleFunc("GET /api/remedies", r.remedyHandler.GetRemedies)
	r.mux.HandleFunc("POST /api/remedies/image", r.remedyHandler.ResolveImage)
	r.mux.HandleFunc("DELETE /api/admin/remedies/cache", r.remedyHandler.ClearCache)

	// Health assessment endpoint
	r.mux.HandleFunc("POST /api/assessment", r.assessmentHandler.Assess)

	// Emergency alert endpoint
	r.mux.HandleFunc("POST /api/emergency", r.emergencyHandler.SubmitEmergency)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.Compression(handler)

	// CORS wraps everything so preflights never reach the handlers
	handler = middleware.CORSMiddleware(handler)

	return handler
}
