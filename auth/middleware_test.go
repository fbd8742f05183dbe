package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hookvault/hookvault/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Run("stores the principal in the context", func(t *testing.T) {
		var principal string
		var found bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, found = auth.PrincipalFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, `{"sub":"user-123"}`, "sig"))
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, found)
		assert.Equal(t, "user-123", principal)
	})

	t.Run("rejects requests without a credential", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects malformed credentials", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/endpoints", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		auth.Middleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("PrincipalFrom on a bare context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, found := auth.PrincipalFrom(req.Context())

		assert.False(t, found)
	})
}
