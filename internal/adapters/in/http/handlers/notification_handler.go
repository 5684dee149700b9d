// internal/adapters/in/http/handlers/notification_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	httpmw "travelia/internal/adapters/in/http/middleware"
	"travelia/internal/application/usecase"
)

// NotificationHandler serves /api/notifications for the authenticated user.
type NotificationHandler struct {
	uc *usecase.NotificationUsecase
}

func NewNotificationHandler(uc *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List handles GET /api/notifications: the caller's own notifications only.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	claims, ok := httpmw.CurrentClaims(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not authenticated"})
		return
	}

	items, err := h.uc.ListForUser(r.Context(), claims.UID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// MarkRead handles PUT /api/notifications/read with body {"id": "..."}.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
		badRequest(w, "notification id is required")
		return
	}

	if err := h.uc.MarkRead(r.Context(), body.ID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification read", "id": body.ID})
}
