package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. Storage failures are
// returned as-is and surface as 500.
var (
	ErrInvalidID    = errors.New("invalid post id")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("post not found")
	ErrForbidden    = errors.New("not the post author")
	ErrUserNotFound = errors.New("user not found")
)
