package domain

import "time"

// User is an account that owns tasks. Name is the identity carried in
// tokens and used as the owner key on tasks.
type User struct {
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
