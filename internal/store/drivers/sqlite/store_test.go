package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$2a$04$fakehashfakehashfakehashfakehash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTask(ownerID, title string) domain.Task {
	now := time.Now().UTC()
	return domain.Task{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	u.Name = "Alice"
	require.NoError(t, st.Users().CreateUser(ctx, u))

	t.Run("by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, "Alice", got.Name)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := st.Users().GetUserByEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, newUser("alice@x.com")))

	err := st.Users().CreateUser(ctx, newUser("alice@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().UpdateProfile(ctx, u.ID, "Alice", "hello")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "hello", got.Bio)

	_, err = st.Users().UpdateProfile(ctx, idx.New().String(), "x", "y")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUserCascadesToTasks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))
	require.NoError(t, st.Tasks().CreateTask(ctx, newTask(u.ID, "orphan-to-be")))

	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	tasks, err := st.Tasks().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestListByOwnerNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	base := time.Now().UTC().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		task := newTask(u.ID, title)
		task.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, st.Tasks().CreateTask(ctx, task))
	}

	tasks, err := st.Tasks().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "third", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
	require.Equal(t, "first", tasks[2].Title)
}

func TestCompoundOwnerMatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := newUser("alice@x.com")
	bob := newUser("bob@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, alice))
	require.NoError(t, st.Users().CreateUser(ctx, bob))

	task := newTask(alice.ID, "alices task")
	require.NoError(t, st.Tasks().CreateTask(ctx, task))

	t.Run("owner sees the task", func(t *testing.T) {
		got, err := st.Tasks().GetByIDAndOwner(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, task.ID, got.ID)
	})

	t.Run("foreign owner gets ErrNotFound", func(t *testing.T) {
		_, err := st.Tasks().GetByIDAndOwner(ctx, task.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("foreign update gets ErrNotFound", func(t *testing.T) {
		title := "bob was here"
		_, err := st.Tasks().UpdateByIDAndOwner(ctx, task.ID, bob.ID, domain.TaskPatch{Title: &title})
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := st.Tasks().GetByIDAndOwner(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alices task", got.Title)
	})

	t.Run("foreign delete gets ErrNotFound", func(t *testing.T) {
		err := st.Tasks().DeleteByIDAndOwner(ctx, task.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUpdateTaskPatchSemantics(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	task := newTask(u.ID, "write report")
	task.Description = "quarterly numbers"
	require.NoError(t, st.Tasks().CreateTask(ctx, task))

	done := true
	got, err := st.Tasks().UpdateByIDAndOwner(ctx, task.ID, u.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)
	require.True(t, got.Completed)
	require.Equal(t, "write report", got.Title, "unpatched fields keep their values")
	require.Equal(t, "quarterly numbers", got.Description)
	require.Equal(t, u.ID, got.OwnerID)
}

func TestDeleteTaskIdempotence(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	task := newTask(u.ID, "fleeting")
	require.NoError(t, st.Tasks().CreateTask(ctx, task))

	require.NoError(t, st.Tasks().DeleteByIDAndOwner(ctx, task.ID, u.ID))
	require.ErrorIs(t, st.Tasks().DeleteByIDAndOwner(ctx, task.ID, u.ID), store.ErrNotFound)
}

func TestCountByOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("alice@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	for i, done := range []bool{true, true, false} {
		task := newTask(u.ID, "t")
		task.Completed = done
		task.CreatedAt = task.CreatedAt.Add(time.Duration(i) * time.Second)
		require.NoError(t, st.Tasks().CreateTask(ctx, task))
	}

	total, completed, err := st.Tasks().CountByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, 2, completed)

	total, completed, err = st.Tasks().CountByOwner(ctx, idx.New().String())
	require.NoError(t, err)
	require.Zero(t, total)
	require.Zero(t, completed)
}
