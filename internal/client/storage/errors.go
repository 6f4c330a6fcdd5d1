package storage

import "errors"

// Common client storage errors
var (
	// ErrImageNotFound indicates that image record was not found
	ErrImageNotFound = errors.New("image not found")

	// ErrQuotaExceeded indicates that a write would exceed the store quota
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrEmptyID indicates that a record has no id
	ErrEmptyID = errors.New("record id cannot be empty")
)
