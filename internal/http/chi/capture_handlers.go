package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hookvault/hookvault/capture"
	"github.com/hookvault/hookvault/endpoint"
)

// captureResponse acknowledges a stored delivery
type captureResponse struct {
	Message string `json:"message"`
}

// postCapture handles POST /webhook/{token}
func postCapture(captureService capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		if token == "" {
			http.Error(w, "token is required", http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		// Duplicate header names collapse last-write-wins
		headers := make(map[string]string)
		for key, values := range r.Header {
			if len(values) > 0 {
				headers[key] = values[len(values)-1]
			}
		}

		_, err = captureService.Capture(r.Context(), token, capture.Delivery{
			Method:  r.Method,
			Headers: headers,
			Body:    string(body),
		})
		if errors.Is(err, endpoint.ErrNotFound) {
			/* Unknown and deleted tokens answer the same 404 so
			 * anonymous senders cannot probe endpoint lifecycles
			 */
			http.Error(w, "endpoint not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(captureResponse{Message: "OK"}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
