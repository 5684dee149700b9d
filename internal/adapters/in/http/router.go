// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"travelia/internal/adapters/in/http/handlers"
	"travelia/internal/adapters/in/http/middleware"
	usecase "travelia/internal/application/usecase"
	userdom "travelia/internal/domain/user"
)

// RouterDeps collects the usecases and the token verifier injected from
// main.go. A nil usecase means its backing service is not configured; the
// router simply leaves those routes unmounted so the rest of the API stays
// up.
type RouterDeps struct {
	TourUC         *usecase.TourUsecase
	UserUC         *usecase.UserUsecase
	PaymentUC      *usecase.PaymentUsecase
	BookingUC      *usecase.BookingUsecase
	NotificationUC *usecase.NotificationUsecase

	Verifier middleware.TokenVerifier
}

// NewRouter sets up routing for the whole API surface.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.AuthMiddleware{Verifier: deps.Verifier}
	authed := auth.Handler
	requireAdmin := middleware.RequireRole(userdom.RoleAdmin)
	admin := func(next http.Handler) http.Handler {
		return authed(requireAdmin(next))
	}

	// Mount only what has a configured usecase behind it.
	if deps.TourUC != nil {
		th := handlers.NewTourHandler(deps.TourUC, admin)
		mux.Handle("/api/tours/latest", http.HandlerFunc(th.Latest))
		mux.Handle("/api/tours/recommend", http.HandlerFunc(th.Recommend))
		mux.Handle("/api/tours/byTour/", http.HandlerFunc(th.ByTour))
		mux.Handle("/api/tours/add-tour", admin(http.HandlerFunc(th.Add)))
		mux.Handle("/api/tours/update/", admin(http.HandlerFunc(th.Update)))
		mux.Handle("/api/tours/", th.Root())
		mux.Handle("/api/tours", th.Root())
	}

	if deps.UserUC != nil {
		ah := handlers.NewAuthHandler(deps.UserUC)
		mux.Handle("/api/auth/register", http.HandlerFunc(ah.Register))
		mux.Handle("/api/auth/list", admin(http.HandlerFunc(ah.List)))

		uh := handlers.NewUserHandler(deps.UserUC)
		mux.Handle("/api/users/profile-person", authed(http.HandlerFunc(uh.ProfilePerson)))
		mux.Handle("/api/users/check-or-create", http.HandlerFunc(uh.CheckOrCreate))
		mux.Handle("/api/users/view-users", admin(http.HandlerFunc(uh.ViewUsers)))
		mux.Handle("/api/users/update-role", admin(http.HandlerFunc(uh.UpdateRole)))
		mux.Handle("/api/users/delete-user", admin(http.HandlerFunc(uh.DeleteUser)))
		mux.Handle("/api/users/create-user", admin(http.HandlerFunc(uh.CreateUser)))
	}

	if deps.PaymentUC != nil {
		ph := handlers.NewPaymentHandler(deps.PaymentUC)
		mux.Handle("/api/create-payment-intent", http.HandlerFunc(ph.CreateIntent))
	}

	if deps.BookingUC != nil {
		bh := handlers.NewBookingHandler(deps.BookingUC)
		mux.Handle("/api/bookings", admin(http.HandlerFunc(bh.List)))
		mux.Handle("/api/bookings/stats", admin(http.HandlerFunc(bh.Stats)))
	}

	if deps.NotificationUC != nil {
		nh := handlers.NewNotificationHandler(deps.NotificationUC)
		mux.Handle("/api/notifications", authed(http.HandlerFunc(nh.List)))
		mux.Handle("/api/notifications/read", authed(http.HandlerFunc(nh.MarkRead)))
	}

	return mux
}
