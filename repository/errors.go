package repository

import "errors"

// Storage-level sentinel errors. The usecase layer maps these onto the
// domain taxonomy with errors.Is.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)
