// Package storetest holds behavioural checks shared by every store driver.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. It should register its own cleanup.
type Factory func(t *testing.T) store.Store

// Run exercises the Users and Tasks repositories of the store built by open.
func Run(t *testing.T, open Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, open(t)) })
	t.Run("tasks", func(t *testing.T) { testTasks(t, open(t)) })
	t.Run("owner scoping", func(t *testing.T) { testOwnerScoping(t, open(t)) })
	t.Run("ping", func(t *testing.T) {
		require.NoError(t, open(t).Ping(context.Background()))
	})
}

var epoch = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTask(owner, title string, at time.Time) domain.Task {
	return domain.Task{
		ID:          idx.NewAt(at).String(),
		Title:       title,
		Description: title + " description",
		Owner:       owner,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// findTask looks a task up through its owner's listing.
func findTask(t *testing.T, s store.Store, owner, id string) (domain.Task, bool) {
	t.Helper()

	list, err := s.Tasks().ListTasksByOwner(context.Background(), owner)
	require.NoError(t, err)
	for _, task := range list {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Users().GetUserByName(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)

	alice := domain.User{Name: "alice", PasswordHash: "$2a$10$hash", CreatedAt: epoch}
	require.NoError(t, s.Users().CreateUser(ctx, alice))

	got, err := s.Users().GetUserByName(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Name)
	require.Equal(t, alice.PasswordHash, got.PasswordHash)
	require.True(t, epoch.Equal(got.CreatedAt), "created_at %v", got.CreatedAt)

	err = s.Users().CreateUser(ctx, domain.User{Name: "alice", PasswordHash: "other", CreatedAt: epoch})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Names are case sensitive.
	require.NoError(t, s.Users().CreateUser(ctx, domain.User{Name: "Alice", PasswordHash: "x", CreatedAt: epoch}))
	got, err = s.Users().GetUserByName(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.PasswordHash, got.PasswordHash)
}

func testTasks(t *testing.T, s store.Store) {
	ctx := context.Background()

	list, err := s.Tasks().ListTasksByOwner(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	first := newTask("bob", "first", epoch)
	second := newTask("bob", "second", epoch.Add(time.Second))
	third := newTask("bob", "third", epoch.Add(2*time.Second))
	for _, task := range []domain.Task{first, second, third} {
		require.NoError(t, s.Tasks().CreateTask(ctx, task))
	}

	require.ErrorIs(t, s.Tasks().CreateTask(ctx, first), store.ErrAlreadyExists)

	list, err = s.Tasks().ListTasksByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, third.ID, list[2].ID)
	require.Equal(t, "second", list[1].Title)
	require.Equal(t, "second description", list[1].Description)
	require.False(t, list[1].Completed)

	require.True(t, second.CreatedAt.Equal(list[1].CreatedAt))
	require.True(t, second.UpdatedAt.Equal(list[1].UpdatedAt))

	doneAt := epoch.Add(time.Hour)
	done, err := s.Tasks().MarkTaskCompleted(ctx, second.ID, "bob", doneAt)
	require.NoError(t, err)
	require.True(t, done.Completed)
	require.Equal(t, second.ID, done.ID)
	require.Equal(t, "second", done.Title)
	require.True(t, doneAt.Equal(done.UpdatedAt), "updated_at %v", done.UpdatedAt)
	require.True(t, second.CreatedAt.Equal(done.CreatedAt))

	// Completing twice returns the record unchanged.
	again, err := s.Tasks().MarkTaskCompleted(ctx, second.ID, "bob", doneAt.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, again.Completed)
	require.True(t, done.UpdatedAt.Equal(again.UpdatedAt), "updated_at moved to %v", again.UpdatedAt)

	stored, ok := findTask(t, s, "bob", second.ID)
	require.True(t, ok)
	require.True(t, doneAt.Equal(stored.UpdatedAt), "stored updated_at %v", stored.UpdatedAt)

	_, err = s.Tasks().MarkTaskCompleted(ctx, "missing", "bob", doneAt)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Tasks().DeleteTask(ctx, first.ID, "bob"))
	require.ErrorIs(t, s.Tasks().DeleteTask(ctx, first.ID, "bob"), store.ErrNotFound)

	_, ok = findTask(t, s, "bob", first.ID)
	require.False(t, ok)

	list, err = s.Tasks().ListTasksByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.True(t, list[0].Completed)
	require.Equal(t, third.ID, list[1].ID)
}

func testOwnerScoping(t *testing.T, s store.Store) {
	ctx := context.Background()

	mine := newTask("carol", "mine", epoch)
	theirs := newTask("dave", "theirs", epoch.Add(time.Second))
	require.NoError(t, s.Tasks().CreateTask(ctx, mine))
	require.NoError(t, s.Tasks().CreateTask(ctx, theirs))

	list, err := s.Tasks().ListTasksByOwner(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, mine.ID, list[0].ID)

	_, err = s.Tasks().MarkTaskCompleted(ctx, theirs.ID, "carol", epoch)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Tasks().DeleteTask(ctx, theirs.ID, "carol"), store.ErrNotFound)

	// dave's task is untouched.
	got, ok := findTask(t, s, "dave", theirs.ID)
	require.True(t, ok)
	require.False(t, got.Completed)
}
