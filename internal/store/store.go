package store

import (
	"context"
	"errors"

	"github.com/taskvault/taskvault/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Every operation is a single-document read or write; nothing in
// this system spans documents, so there is no transaction surface.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up the login handle. Callers normalize the email
	// first; the store matches exactly what it persisted.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name and bio and bumps updated_at, returning the
	// fresh record.
	UpdateProfile(ctx context.Context, userID, name, bio string) (domain.User, error)

	// DeleteUser cascades to tasks (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Tasks interface {
	// CreateTask inserts a new task (id and owner are set by the service).
	CreateTask(ctx context.Context, t domain.Task) error

	// ListByOwner returns the owner's tasks newest-created-first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// GetByIDAndOwner fetches a task by compound (id, owner) match. A task
	// owned by someone else is ErrNotFound, same as a missing id.
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (domain.Task, error)

	// UpdateByIDAndOwner applies a patch under the same compound match and
	// returns the updated record.
	UpdateByIDAndOwner(ctx context.Context, id, ownerID string, patch domain.TaskPatch) (domain.Task, error)

	// DeleteByIDAndOwner removes a task under the same compound match.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error

	// CountByOwner returns total and completed task counts for the owner.
	CountByOwner(ctx context.Context, ownerID string) (total, completed int, err error)
}
