package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/hookvault/hookvault/auth"
	"github.com/hookvault/hookvault/capture"
	"github.com/hookvault/hookvault/endpoint"
)

// Handlers sets up the API routes
func Handlers(ctx context.Context, endpointService endpoint.UseCase, captureService capture.UseCase) *chi.Mux {
	logger := httplog.NewLogger("hookvault-api", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	/* Anonymous capture path. No authentication - the token in the URL
	 * is the only credential.
	 */
	r.Post("/webhook/{token}", postCapture(captureService).ServeHTTP)

	// Owner-facing API, principal extracted by the auth middleware
	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Post("/endpoints", postEndpoint(endpointService).ServeHTTP)
		r.Get("/endpoints", getEndpoints(endpointService).ServeHTTP)
		r.Delete("/endpoints/{id}", deleteEndpoint(endpointService).ServeHTTP)
		r.Get("/endpoints/{id}/requests", getEndpointRequests(endpointService, captureService).ServeHTTP)
	})

	return r
}
