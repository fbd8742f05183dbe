package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hookvault/hookvault/auth"
	"github.com/hookvault/hookvault/capture"
	"github.com/hookvault/hookvault/endpoint"
)

/* HTTP layer DTOs for the owner-facing API
 * Separate from domain entities to avoid leaking internal structure
 */

// endpointResponse represents an endpoint in the API
type endpointResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"`
}

// endpointListResponse wraps the endpoint listing
type endpointListResponse struct {
	Endpoints []endpointResponse `json:"endpoints"`
}

// requestResponse represents a captured request in the API
type requestResponse struct {
	ID         string            `json:"id"`
	EndpointID string            `json:"endpoint_id"`
	Method     string            `json:"method"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
	CreatedAt  string            `json:"created_at"`
}

// requestListResponse wraps one page of captured requests
type requestListResponse struct {
	Requests   []requestResponse `json:"requests"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

const defaultPageSize = 50

// postEndpoint handles POST /v1/endpoints
func postEndpoint(endpointService endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := endpointService.Create(r.Context(), principal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toEndpointResponse(e)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// getEndpoints handles GET /v1/endpoints
func getEndpoints(endpointService endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		endpoints, err := endpointService.List(r.Context(), principal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := endpointListResponse{
			Endpoints: make([]endpointResponse, 0, len(endpoints)),
		}
		for _, e := range endpoints {
			response.Endpoints = append(response.Endpoints, toEndpointResponse(e))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// deleteEndpoint handles DELETE /v1/endpoints/{id}
func deleteEndpoint(endpointService endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "endpoint id is required", http.StatusBadRequest)
			return
		}

		if err := endpointService.Delete(r.Context(), principal, id); err != nil {
			writeEndpointError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// getEndpointRequests handles GET /v1/endpoints/{id}/requests
func getEndpointRequests(endpointService endpoint.UseCase, captureService capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "endpoint id is required", http.StatusBadRequest)
			return
		}

		// Same ownership rule as delete: 404 for unknown, 403 for
		// someone else's endpoint
		e, err := endpointService.Authorize(r.Context(), principal, id)
		if err != nil {
			writeEndpointError(w, err)
			return
		}

		limit := defaultPageSize
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		requests, next, err := captureService.ListByEndpoint(r.Context(), e.ID, r.URL.Query().Get("cursor"), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := requestListResponse{
			Requests:   make([]requestResponse, 0, len(requests)),
			NextCursor: next,
		}
		for _, req := range requests {
			response.Requests = append(response.Requests, requestResponse{
				ID:         req.ID,
				EndpointID: req.EndpointID,
				Method:     req.Method,
				Headers:    req.Headers,
				Body:       req.Body,
				CreatedAt:  req.CreatedAt.Format(time.RFC3339Nano),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func toEndpointResponse(e endpoint.Endpoint) endpointResponse {
	return endpointResponse{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Token:     e.Token,
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
	}
}

// writeEndpointError maps the ownership/existence sentinels to status codes
func writeEndpointError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, endpoint.ErrNotFound):
		http.Error(w, "endpoint not found", http.StatusNotFound)
	case errors.Is(err, endpoint.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
