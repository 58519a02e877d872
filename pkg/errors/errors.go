// ================== pkg/errors/errors.go =================
package errors

import "errors"

// Sentinel errors shared across features. Repositories return these (possibly
// wrapped with %w) and handlers translate them into HTTP responses.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyLiked  = errors.New("complaint already liked by this user")
	ErrInvalidStatus = errors.New("unknown complaint status")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDuplicate     = errors.New("resource already exists")
)
