package domain

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Owner       string // User.Name of the creator
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
