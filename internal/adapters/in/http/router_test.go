// internal/adapters/in/http/router_test.go
package httpin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelia/internal/adapters/in/http/middleware"
	usecase "travelia/internal/application/usecase"
	bookingdom "travelia/internal/domain/booking"
	userdom "travelia/internal/domain/user"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, idToken string) (middleware.Claims, error) {
	switch idToken {
	case "admin-token":
		return middleware.NewClaims("uid-admin", "admin@example.com", userdom.RoleAdmin), nil
	case "customer-token":
		return middleware.NewClaims("uid-cust", "cust@example.com", ""), nil
	}
	return middleware.Claims{}, errors.New("unknown token")
}

type stubBookings struct{}

func (stubBookings) List(context.Context) ([]bookingdom.Booking, error) {
	return []bookingdom.Booking{}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterDeps{
		BookingUC: usecase.NewBookingUsecase(stubBookings{}),
		Verifier:  stubVerifier{},
	})
}

func get(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	if rec := get(t, newTestRouter(), "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz = %d", rec.Code)
	}
}

func TestAdminRouteGates(t *testing.T) {
	router := newTestRouter()

	if rec := get(t, router, "/api/bookings", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: %d, want 401", rec.Code)
	}
	if rec := get(t, router, "/api/bookings", "bogus"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: %d, want 401", rec.Code)
	}
	if rec := get(t, router, "/api/bookings", "customer-token"); rec.Code != http.StatusForbidden {
		t.Errorf("customer: %d, want 403", rec.Code)
	}
	if rec := get(t, router, "/api/bookings", "admin-token"); rec.Code != http.StatusOK {
		t.Errorf("admin: %d, want 200", rec.Code)
	}
}

func TestUnconfiguredRoutesStayUnmounted(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unmounted route = %d, want 404", rec.Code)
	}
}
