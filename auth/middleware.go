package auth

import (
	"context"
	"net/http"
)

type contextKey struct{}

/* Middleware extracts the principal from the Authorization header and
 * stores it in the request context. Requests without a usable
 * credential are rejected with 401 before reaching the handler.
 */
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := Extract(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFrom returns the principal stored by Middleware, if any.
func PrincipalFrom(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(contextKey{}).(string)
	return principal, ok
}
