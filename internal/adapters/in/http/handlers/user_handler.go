// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	httpmw "travelia/internal/adapters/in/http/middleware"
	"travelia/internal/application/usecase"
	userdom "travelia/internal/domain/user"
)

// UserHandler serves /api/users: profile self-service for signed-in users
// and the admin account-management endpoints.
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ProfilePerson handles GET and PUT /api/users/profile-person for the
// authenticated caller. The uid always comes from the verified token, never
// from the body.
func (h *UserHandler) ProfilePerson(w http.ResponseWriter, r *http.Request) {
	log.Printf("[UserHandler] method=%s path=%s", r.Method, r.URL.Path)

	claims, ok := httpmw.CurrentClaims(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not authenticated"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.uc.Profile(r.Context(), claims.UID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodPut:
		var upd userdom.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			badRequest(w, "invalid json")
			return
		}
		profile, err := h.uc.UpdateProfile(r.Context(), claims.UID, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		methodNotAllowed(w)
	}
}

// CheckOrCreate handles POST /api/users/check-or-create. Called by clients
// right after a Firebase sign-in to make sure a profile document exists.
func (h *UserHandler) CheckOrCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}

	created, err := h.uc.CheckOrCreate(r.Context(), body.UID, body.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"created": created})
}

// ViewUsers handles GET /api/users/view-users (admin).
func (h *UserHandler) ViewUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	profiles, err := h.uc.ListProfiles(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// UpdateRole handles PUT /api/users/update-role (admin).
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	log.Printf("[UserHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	var body struct {
		UID  string `json:"uid"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json")
		return
	}

	if err := h.uc.UpdateRole(r.Context(), body.UID, body.Role); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "role updated", "uid": body.UID, "role": body.Role})
}

// DeleteUser handles DELETE /api/users/delete-user (admin). The uid comes
// from the body, or from ?uid= for clients that cannot send a DELETE body.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log.Printf("[UserHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}

	var body struct {
		UID string `json:"uid"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	uid := strings.TrimSpace(body.UID)
	if uid == "" {
		uid = strings.TrimSpace(r.URL.Query().Get("uid"))
	}

	if err := h.uc.Delete(r.Context(), uid); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted", "uid": uid})
}

// CreateUser handles POST /api/users/create-user (admin): provisions an auth
// record with a temp password, assigns the role, writes the profile, and
// mails the credentials when a mailer is configured.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log.Printf("[UserHandler] method=%s path=%s", r.Method, r.URL.Path)
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var in usecase.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}

	created, err := h.uc.CreateUser(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
