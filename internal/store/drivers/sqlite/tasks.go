package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `id, owner_id, title, description, completed, created_at, updated_at`

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, owner_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *tasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description,
			&t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetByIDAndOwner always matches on the compound (id, owner_id) key. An id
// that exists under a different owner comes back as ErrNotFound, exactly
// like an id that never existed.
func (r *tasksRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)

	var t domain.Task
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, patch domain.TaskPatch) (domain.Task, error) {
	current, err := r.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Completed != nil {
		current.Completed = *patch.Completed
	}
	current.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		current.Title, current.Description, current.Completed, current.UpdatedAt, id, ownerID)
	if err != nil {
		return domain.Task{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return domain.Task{}, err
	} else if n == 0 {
		return domain.Task{}, mapNotFound(sql.ErrNoRows)
	}

	return current, nil
}

func (r *tasksRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *tasksRepo) CountByOwner(ctx context.Context, ownerID string) (total, completed int, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM tasks WHERE owner_id = ?`, ownerID)
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
