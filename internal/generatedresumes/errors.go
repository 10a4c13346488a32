package generatedresumes

import "errors"

var (
	// ErrNotFound indicates the generated resume does not exist or has expired.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
