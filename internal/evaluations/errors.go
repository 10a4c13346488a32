package evaluations

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocument indicates the generated PDF could not be built or stored.
	ErrDocument = errors.New("generated resume failed")
)
