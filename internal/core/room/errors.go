package room

import "errors"

// Error kinds surfaced by room operations. Callers classify with errors.Is.
var (
	ErrEmptyInput      = errors.New("room number is required")
	ErrDuplicateNumber = errors.New("room already exists")
	ErrNotFound        = errors.New("room not found")
	ErrInvalidStatus   = errors.New("invalid room status")
)
