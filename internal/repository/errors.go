package repository

import "errors"

var (
	// ErrNotFound is returned when a record id does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when the store's own unique constraint
	// rejects a write, i.e. a duplicate slipped in between the uniqueness
	// check and the insert.
	ErrDuplicate = errors.New("duplicate record")
)
