// Package apperr defines the error classes shared by services and handlers.
// Services wrap these sentinels with fmt.Errorf and %w; handlers classify
// with errors.Is to pick a status code.
package apperr

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique field (e.g. email) is already taken.
	ErrConflict = errors.New("already exists")

	// ErrUnauthenticated means no valid session identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the session identity does not own the target resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalid means the input failed a business rule (e.g. score out of range).
	ErrInvalid = errors.New("invalid input")
)
