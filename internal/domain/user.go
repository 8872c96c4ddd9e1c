package domain

import "time"

// User represents an authenticated account of the system.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
