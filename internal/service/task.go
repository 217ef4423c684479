package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/idx"
)

var ErrTitleRequired = errors.New("task: title is required")

// TaskService is the ownership-scoped access layer for tasks. Every
// operation takes the authenticated user and the store queries always carry
// the owner filter, so a handler cannot forget the check.
type TaskService struct {
	Store store.Store
}

// Create inserts a task owned by the authenticated user. Whatever owner a
// client might have supplied in the payload is irrelevant; the owner is
// forcibly the caller.
func (s *TaskService) Create(ctx context.Context, owner domain.User, title, description string) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, ErrTitleRequired
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          idx.New().String(),
		OwnerID:     owner.ID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ListOwned returns the caller's tasks, newest-created-first.
func (s *TaskService) ListOwned(ctx context.Context, owner domain.User) ([]domain.Task, error) {
	return s.Store.Tasks().ListByOwner(ctx, owner.ID)
}

// GetOwned fetches one of the caller's tasks. A foreign or absent id is
// store.ErrNotFound either way.
func (s *TaskService) GetOwned(ctx context.Context, owner domain.User, taskID string) (domain.Task, error) {
	return s.Store.Tasks().GetByIDAndOwner(ctx, taskID, owner.ID)
}

// UpdateOwned patches one of the caller's tasks under the same compound
// match. The owner field is not part of the patch type at all.
func (s *TaskService) UpdateOwned(ctx context.Context, owner domain.User, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	return s.Store.Tasks().UpdateByIDAndOwner(ctx, taskID, owner.ID, patch)
}

// DeleteOwned removes one of the caller's tasks. Deleting an id that is
// already gone returns store.ErrNotFound.
func (s *TaskService) DeleteOwned(ctx context.Context, owner domain.User, taskID string) error {
	return s.Store.Tasks().DeleteByIDAndOwner(ctx, taskID, owner.ID)
}
