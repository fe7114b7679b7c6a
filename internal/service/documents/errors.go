package documents

import "errors"

var (
	// ErrRecordNotFound is returned when no record matches the identifier.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInternal is returned on storage or rendering failures.
	ErrInternal = errors.New("documents: internal error")
)
