package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, redis,
// mongo) implement this. Every operation touches a single record, so there is
// no transaction surface.
type Store interface {
	Users() Users
	Tasks() Tasks

	// ApplyMigrations brings the schema (or indexes) up to date.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backend is still reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the name
	// is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByName is used during login.
	GetUserByName(ctx context.Context, name string) (domain.User, error)
}

// Tasks are always addressed through their owner. A task owned by someone
// else is reported as ErrNotFound.
type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasksByOwner returns tasks in creation order. Never nil.
	ListTasksByOwner(ctx context.Context, owner string) ([]domain.Task, error)

	// MarkTaskCompleted sets completed and stamps updated_at with at on the
	// first completion only. Completing a done task returns it unchanged.
	MarkTaskCompleted(ctx context.Context, id, owner string, at time.Time) (domain.Task, error)

	DeleteTask(ctx context.Context, id, owner string) error
}
