package domain

import "time"

// Task is an owned resource. OwnerID is set once at creation and is not
// patchable afterwards; every store lookup matches on (id, owner_id).
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch is a partial update. Nil fields are left untouched. There is
// deliberately no owner field here.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
