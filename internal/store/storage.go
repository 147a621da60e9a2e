package store

import (
	"errors"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflicts with existing data")
	// ErrNoSchema means the table has not been created yet, i.e. nothing
	// has ever been written to it.
	ErrNoSchema = errors.New("table does not exist yet")
)
