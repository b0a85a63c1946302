// Package domain defines the error taxonomy and value types shared by the
// service layer and both transport adapters. Callers match errors with
// errors.Is; the adapters map each sentinel to their native wire error.
package domain

import "errors"

var (
	// Validation failures: missing field, short password, bad enum value.
	ErrInvalidInput = errors.New("invalid input")

	// Unique email/username constraint violated on registration.
	ErrDuplicateIdentity = errors.New("email or username already in use")

	// Login failure. The message never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Missing, malformed or expired token, or a token whose subject was deleted.
	ErrUnauthenticated = errors.New("authentication required")

	// Authenticated but not the owner of the target entity.
	ErrForbidden = errors.New("forbidden")

	// Target entity does not exist. Task access by a non-owner collapses into
	// this error so existence never leaks.
	ErrNotFound = errors.New("not found")

	// Unexpected collaborator failure. Logged server-side, reported generically.
	ErrInternal = errors.New("internal error")
)
