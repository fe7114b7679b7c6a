package create_quote

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing.
	ErrInvalidInput = errors.New("create_quote: invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_quote: internal error")
)
