package tasksdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session performs task operations with a token issued by Login.
type Session struct {
	client *Client
	name   string
	token  string
}

// Name returns the user the token was issued for.
func (s *Session) Name() string { return s.name }

// Token returns the raw token.
func (s *Session) Token() string { return s.token }

func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/tasks", s.token, nil)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := decodeJSON(resp, &tasks, http.StatusOK); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Session) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	resp, err := s.client.do(ctx, http.MethodPost, "/tasks", s.token, CreateTaskRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusCreated); err != nil {
		return nil, err
	}
	return &task, nil
}

// MarkDone completes the task with id.
func (s *Session) MarkDone(ctx context.Context, id string) (*Task, error) {
	resp, err := s.client.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.client.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
