package service

import "errors"

// Request-level validation failures. Specific failures wrap one of these so
// callers can match the category with errors.Is while keeping the message.
var (
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidInputFormat = errors.New("invalid input format")
	ErrInvalidBookTitle   = errors.New("invalid book title")
)

// IsValidationError reports whether err belongs to the validation taxonomy,
// as opposed to an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidInputFormat) ||
		errors.Is(err, ErrInvalidBookTitle)
}
