package model

import "errors"

// ErrEmptyResult means the model produced no reply at all.
var ErrEmptyResult = errors.New("The AI response was empty. Please try again.")

// ParseError means the reply was not a decodable ResumeRecord. Raw keeps the reply unchanged.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "Failed to decode response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
