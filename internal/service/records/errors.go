package records

import "errors"

var (
	// ErrRecordNotFound is returned when no record matches the identifier.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidInput is returned on missing or malformed fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidKind is returned when the record-kind discriminator is unknown.
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("records: internal error")
)
