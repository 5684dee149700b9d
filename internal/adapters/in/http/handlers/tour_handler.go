// internal/adapters/in/http/handlers/tour_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"travelia/internal/application/usecase"
	tourdom "travelia/internal/domain/tour"
)

// TourHandler serves everything under /api/tours. The catalog reads are
// public; the write endpoints are mounted behind the admin chain by the
// router, except DELETE /api/tours/{id}, which shares the public prefix and
// is gated here via the injected admin middleware.
type TourHandler struct {
	uc    *usecase.TourUsecase
	admin func(http.Handler) http.Handler
}

func NewTourHandler(uc *usecase.TourUsecase, admin func(http.Handler) http.Handler) *TourHandler {
	return &TourHandler{uc: uc, admin: admin}
}

// Root handles the public /api/tours/ prefix.
func (h *TourHandler) Root() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[TourHandler] method=%s path=%s", r.Method, r.URL.Path)

		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tours"), "/")

		switch {

		// GET /api/tours
		case r.Method == http.MethodGet && rest == "":
			h.list(w, r)

		// GET /api/tours/{id}
		case r.Method == http.MethodGet && !strings.Contains(rest, "/"):
			h.get(w, r, rest)

		// DELETE /api/tours/{id}
		case r.Method == http.MethodDelete && rest != "" && !strings.Contains(rest, "/"):
			h.admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.delete(w, r, rest)
			})).ServeHTTP(w, r)

		default:
			notFound(w)
		}
	})
}

// Latest handles GET /api/tours/latest?limit=N.
func (h *TourHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit := parseIntDefault(r.URL.Query().Get("limit"), 10)
	tours, err := h.uc.Latest(r.Context(), limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// Recommend handles POST /api/tours/recommend.
func (h *TourHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var ans tourdom.Answer
	if err := json.NewDecoder(r.Body).Decode(&ans); err != nil {
		writeErr(w, tourdom.ErrInvalidPayload)
		return
	}

	best, err := h.uc.Recommend(r.Context(), ans)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tour": best})
}

// ByTour handles GET /api/tours/byTour/{tourId}, returning the itinerary
// rows sorted into display order.
func (h *TourHandler) ByTour(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	tourID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tours/byTour"), "/")
	details, err := h.uc.DetailsByTour(r.Context(), tourID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Add handles POST /api/tours/add-tour (admin, multipart or JSON).
func (h *TourHandler) Add(w http.ResponseWriter, r *http.Request) {
	log.Printf("[TourHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	payload, files, err := decodeTourRequest(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	created, err := h.uc.Create(r.Context(), payload, files)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/tours/update/{id} (admin, multipart or JSON).
func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("[TourHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	docID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tours/update"), "/")
	payload, files, err := decodeTourRequest(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	if err := h.uc.Update(r.Context(), docID, payload, files); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "tour updated", "id": docID})
}

func (h *TourHandler) list(w http.ResponseWriter, r *http.Request) {
	tours, err := h.uc.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

func (h *TourHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	t, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TourHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	deletedID, err := h.uc.Delete(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "tour deleted", "id": deletedID})
}
