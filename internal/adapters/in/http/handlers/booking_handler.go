// internal/adapters/in/http/handlers/booking_handler.go
package handlers

import (
	"net/http"

	"travelia/internal/application/usecase"
)

// BookingHandler serves the admin reporting endpoints under /api/bookings.
type BookingHandler struct {
	uc *usecase.BookingUsecase
}

func NewBookingHandler(uc *usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List handles GET /api/bookings (admin).
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	bookings, err := h.uc.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Stats handles GET /api/bookings/stats (admin): paid revenue by day plus
// the top tours and users by booking count.
func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
