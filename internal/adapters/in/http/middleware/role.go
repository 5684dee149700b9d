// internal/adapters/in/http/middleware/role.go
package middleware

import "net/http"

// RequireRole gates a route behind a role allow-list. Must run after
// AuthMiddleware: an unauthenticated request is 401, a wrong role is 403.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	allowSet := make(map[string]bool, len(allowed))
	for _, role := range allowed {
		allowSet[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := CurrentClaims(r)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if !allowSet[claims.Role] {
				writeAuthError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
