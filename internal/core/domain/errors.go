package domain

import "errors"

// Error kinds. Every domain failure unwraps to exactly one of these so the
// HTTP layer can pick a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// Error carries a client-facing message alongside its kind.
type Error struct {
	Kind    error
	Message string
	// Details lists individual field problems, if any.
	Details []string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string, details ...string) error {
	return &Error{Kind: ErrValidation, Message: msg, Details: details}
}

func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func Internal(msg string) error { return &Error{Kind: ErrInternal, Message: msg} }

// Sentinels shared by repositories and services.
var (
	ErrUserNotFound     = NotFound("user not found")
	ErrUserExists       = Conflict("user already exists")
	ErrBirthdayNotFound = NotFound("birthday not found")
	ErrBirthdayExists   = Conflict("the birthday already exists")
)
