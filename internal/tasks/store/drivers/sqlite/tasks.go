package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	q *gen.Queries
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	err := r.q.CreateTask(ctx, gen.CreateTaskParams{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Owner:       t.Owner,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	rows, err := r.q.ListTasksByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTask(row))
	}
	return out, nil
}

func (r *tasksRepo) MarkTaskCompleted(ctx context.Context, id, owner string, at time.Time) (domain.Task, error) {
	row, err := r.q.MarkTaskCompleted(ctx, gen.MarkTaskCompletedParams{
		UpdatedAt: at.UTC(),
		ID:        id,
		Owner:     owner,
	})
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, owner string) error {
	n, err := r.q.DeleteTask(ctx, gen.DeleteTaskParams{ID: id, Owner: owner})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
