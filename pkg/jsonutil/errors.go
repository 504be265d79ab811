package jsonutil

import "errors"

var (
	// ErrInvalidJSON is returned when input is not a single valid JSON value.
	ErrInvalidJSON = errors.New("invalid json")

	// ErrEmptyInput is returned when there is nothing to decode.
	ErrEmptyInput = errors.New("empty json input")
)
