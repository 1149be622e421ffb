package usecase

import "errors"

var (
	// ErrLoginFailed stands in for both "unknown name pair" and "wrong
	// password" so callers cannot enumerate accounts.
	ErrLoginFailed = errors.New("incorrect login information")

	// ErrPasswordNotAllowed rejects admin updates that try to set a password
	ErrPasswordNotAllowed = errors.New("password change is not allowed")
)
