package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// TaskService manages tasks on behalf of an owner. The owner always comes
// from the authenticated caller, never from the request body.
type TaskService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TaskService) List(ctx context.Context, owner string) ([]domain.Task, error) {
	tasks, err := s.Store.Tasks().ListTasksByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, owner, title, description string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return domain.Task{}, invalid("title", "is required")
	case len(title) > MaxTitleLength:
		return domain.Task{}, invalid("title", fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	case len(description) > MaxDescriptionLength:
		return domain.Task{}, invalid("description", fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
	}

	now := s.now()
	task := domain.Task{
		ID:          idx.NewAt(now).String(),
		Title:       title,
		Description: description,
		Completed:   false,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// MarkDone sets completed on the task. Calling it again returns the task unchanged.
func (s *TaskService) MarkDone(ctx context.Context, owner, id string) (domain.Task, error) {
	task, err := s.Store.Tasks().MarkTaskCompleted(ctx, id, owner, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("mark task done: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, owner, id string) error {
	if err := s.Store.Tasks().DeleteTask(ctx, id, owner); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
