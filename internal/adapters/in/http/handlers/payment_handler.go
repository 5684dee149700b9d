// internal/adapters/in/http/handlers/payment_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"travelia/internal/application/usecase"
	paydom "travelia/internal/domain/payment"
)

// PaymentHandler serves POST /api/create-payment-intent.
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	log.Printf("[PaymentHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		TourID string `json:"tourId"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if body.TourID == "" {
		writeErr(w, paydom.ErrMissingTour)
		return
	}

	clientSecret, err := h.uc.CreateIntent(r.Context(), body.TourID, body.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
