package http

import (
	"net/http"

	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	stats, err := h.DashboardService.Stats(ctx, user)
	if err != nil {
		log.Error("dashboard stats failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to your dashboard!",
		"user": map[string]string{
			"email": user.Email,
			"name":  user.Name,
		},
		"stats": stats.Stats,
	})
}
