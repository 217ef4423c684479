package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/service"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.TaskService.Create(ctx, user, req.Title, req.Description)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, newTaskView(task))
	case errors.Is(err, service.ErrTitleRequired):
		httpx.WriteMessage(w, http.StatusBadRequest, "Title is required")
	default:
		log.Error("task create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	tasks, err := h.TaskService.ListOwned(ctx, user)
	if err != nil {
		log.Error("task list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newTaskViews(tasks))
}

func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	task, err := h.TaskService.GetOwned(ctx, user, r.PathValue("id"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, newTaskView(task))
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Task not found")
	default:
		log.Error("task get failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	task, err := h.TaskService.UpdateOwned(ctx, user, r.PathValue("id"), patch)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, newTaskView(task))
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Task not found")
	default:
		log.Error("task update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	err := h.TaskService.DeleteOwned(ctx, user, r.PathValue("id"))
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, "Task deleted")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Task not found")
	default:
		log.Error("task delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
