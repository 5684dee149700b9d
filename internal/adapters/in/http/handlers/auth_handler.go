// internal/adapters/in/http/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"travelia/internal/application/usecase"
)

// AuthHandler serves /api/auth: self-service registration plus the admin
// account listing.
type AuthHandler struct {
	uc *usecase.UserUsecase
}

func NewAuthHandler(uc *usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AuthHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}

	account, err := h.uc.Register(r.Context(), body.Email, body.Password, body.Role)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// List handles GET /api/auth/list (admin): every auth record with its role.
func (h *AuthHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	accounts, err := h.uc.ListAccounts(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}
