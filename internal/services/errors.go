package services

import "errors"

// Error kinds surfaced by the service layer. Uniqueness violations keep the
// repositories.ErrDuplicate identity so callers can tell the three apart
// with errors.Is; anything else is an engine failure and propagates wrapped.
var (
	// ErrNotFound reports that a compound operation could not load the chat,
	// project, or message it needs. Plain point lookups return (nil, nil)
	// instead.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports caller-supplied data failing a precondition
	// before anything touches storage.
	ErrValidation = errors.New("validation failed")
)
