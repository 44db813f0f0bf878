// Package service contains the server-side business logic: signup and login
// (AuthService) and owner-scoped task operations (TaskService). Failures are
// reported as *Error values whose Kind the HTTP layer maps to a status code.
package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure.
type Kind int

const (
	// KindValidation covers missing or malformed input.
	KindValidation Kind = iota + 1
	// KindConflict covers uniqueness violations.
	KindConflict
	// KindAuthentication covers bad credentials and bad tokens.
	KindAuthentication
	// KindNotFound covers records that are absent or owned by someone else.
	KindNotFound
	// KindInternal covers unexpected storage or infrastructure failures.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not found"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every service operation.
// Message is safe to show to the caller; Err holds the underlying cause.
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the underlying cause as text, or "" if there is none.
func (e *Error) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// KindOf returns the Kind of err, or KindInternal for errors that did not
// come from this package.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindInternal
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
