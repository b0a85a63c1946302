package graphql

import (
	"context"
	"errors"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/logging"
)

// Machine-readable codes surfaced under extensions.code; one per domain
// error class.
const (
	codeBadUserInput       = "BAD_USER_INPUT"
	codeDuplicateIdentity  = "DUPLICATE_IDENTITY"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeForbidden          = "FORBIDDEN"
	codeNotFound           = "NOT_FOUND"
	codeInternal           = "INTERNAL_SERVER_ERROR"
)

// apiError pairs a resolver error with its extensions code. It satisfies
// gqlerrors.ExtendedError so the executor copies the code into the response.
type apiError struct {
	err  error
	code string
}

func (e *apiError) Error() string { return e.err.Error() }

func (e *apiError) Unwrap() error { return e.err }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func codeFromError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return codeBadUserInput
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return codeDuplicateIdentity
	case errors.Is(err, domain.ErrInvalidCredentials):
		return codeInvalidCredentials
	case errors.Is(err, domain.ErrUnauthenticated):
		return codeUnauthenticated
	case errors.Is(err, domain.ErrForbidden):
		return codeForbidden
	case errors.Is(err, domain.ErrNotFound):
		return codeNotFound
	default:
		return codeInternal
	}
}

// wrapError converts a service error into the form the executor formats.
// Internal failures are logged and replaced with a generic message.
func wrapError(ctx context.Context, logger logging.Logger, err error) error {
	code := codeFromError(err)
	if code == codeInternal {
		logger.Error(ctx, "resolver failed", "error", err)
		err = domain.ErrInternal
	}
	return &apiError{err: err, code: code}
}
