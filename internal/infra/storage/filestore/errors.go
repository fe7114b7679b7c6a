package filestore

import "errors"

var (
	// ErrStoreUnreadable is returned when the store file exists but cannot
	// be read. Callers must not treat this as an empty store.
	ErrStoreUnreadable = errors.New("filestore: store file unreadable")

	// ErrStoreCorrupted is returned when the store file cannot be decoded.
	ErrStoreCorrupted = errors.New("filestore: store file corrupted")

	// ErrWriteFailed is returned when persisting the store fails.
	ErrWriteFailed = errors.New("filestore: failed to write store file")
)
