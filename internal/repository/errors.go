package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when inserting a user whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
