// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	userdom "travelia/internal/domain/user"
)

// Claims is the authenticated request identity attached to the context.
type Claims struct {
	UID   string
	Email string
	Role  string
}

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (Claims, error)
}

// context key: avoid string keys (collision safety, SA1029)
type ctxKey struct{ name string }

var ctxKeyClaims = ctxKey{name: "claims"}

// NewClaims is the single place the implicit role default is applied: a token
// with no role claim is a customer.
func NewClaims(uid, email, role string) Claims {
	role = strings.TrimSpace(role)
	if role == "" {
		role = userdom.RoleCustomer
	}
	return Claims{UID: strings.TrimSpace(uid), Email: strings.TrimSpace(email), Role: role}
}

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and stores the decoded claims in the request context for downstream
// handlers. Missing or invalid tokens are rejected with 401.
type AuthMiddleware struct {
	Verifier TokenVerifier
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Verifier == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			writeAuthError(w, http.StatusUnauthorized, "empty bearer token")
			return
		}

		claims, err := m.Verifier.Verify(r.Context(), idToken)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentClaims returns the verified claims for the request, if any.
func CurrentClaims(r *http.Request) (Claims, bool) {
	v := r.Context().Value(ctxKeyClaims)
	if v == nil {
		return Claims{}, false
	}
	c, ok := v.(Claims)
	if !ok || c.UID == "" {
		return Claims{}, false
	}
	return c, true
}

func writeAuthError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// ----------------------------------------
// Firebase-backed verifier
// ----------------------------------------

// FirebaseVerifier implements TokenVerifier on the Firebase Auth client.
type FirebaseVerifier struct {
	Auth *fbauth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (Claims, error) {
	token, err := v.Auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return Claims{}, err
	}

	email, _ := token.Claims["email"].(string)
	role, _ := token.Claims["role"].(string)
	return NewClaims(token.UID, email, role), nil
}
