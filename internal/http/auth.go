package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupHandler struct {
	AuthService *service.AuthService
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.AuthService.Register(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusCreated, "User created successfully")
	case errors.Is(err, service.ErrMissingCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, service.ErrWeakPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrDuplicateUser):
		httpx.WriteMessage(w, http.StatusBadRequest, "User already exists")
	default:
		log.Error("signup failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.AuthService.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"token": session.Token,
			"user":  newUserView(session.User),
		})
	case errors.Is(err, service.ErrMissingCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		log.Error("login failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
