package get_slots

import "errors"

var (
	// ErrInvalidInput is returned when the requested date is missing or malformed.
	ErrInvalidInput = errors.New("get_slots: invalid input data")

	// ErrInternal is returned on storage or slot-generation failures.
	ErrInternal = errors.New("get_slots: internal error")
)
