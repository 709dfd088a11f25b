package store

import "errors"

var (
	// ErrUserNotFound is returned when a write targets an unknown user ID.
	ErrUserNotFound = errors.New("store: user not found")

	// ErrDuplicateEmail is returned by backends that enforce email uniqueness themselves.
	ErrDuplicateEmail = errors.New("store: email already in use")
)
