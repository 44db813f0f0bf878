package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that username or email is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTaskNotFound indicates that no task matched both id and owner
	ErrTaskNotFound = errors.New("task not found")
)
