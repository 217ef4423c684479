package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserView(user))
}

func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req struct {
		Name *string `json:"name"`
		Bio  *string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name, bio := user.Name, user.Bio
	if req.Name != nil {
		name = *req.Name
	}
	if req.Bio != nil {
		bio = *req.Bio
	}

	updated, err := h.UserService.UpdateProfile(ctx, user.ID, name, bio)
	if err != nil {
		log.Error("profile update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated",
		"user":    newUserView(updated),
	})
}
