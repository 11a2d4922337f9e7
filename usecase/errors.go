package usecase

import "errors"

// Domain error taxonomy. Every operation fails with exactly one of these;
// handlers map them onto HTTP statuses with errors.Is. All are terminal for
// the current request, nothing is retried internally.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrDuplicateIdentity  = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrNotFound           = errors.New("note not found")
	ErrStorageFailure     = errors.New("storage unavailable")
)
