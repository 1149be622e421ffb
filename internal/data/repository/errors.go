package repository

import "errors"

var (
	// ErrNotFound means the requested user does not exist
	ErrNotFound = errors.New("user does not exist")

	// ErrConflict means the (first_name, last_name) pair is already taken.
	// Raised by the unique index on insert or by the pre-check in the services.
	ErrConflict = errors.New("user already exists")
)
