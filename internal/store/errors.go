package store

import "errors"

var (
	// ErrSchemaMismatch indicates the database schema version doesn't match
	// the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")

	// ErrLocked indicates another holreg process holds the database lock.
	// Every stage assumes exclusive single-process access to the store.
	ErrLocked = errors.New("database is locked by another process")

	// ErrNotFound indicates a lookup matched no row.
	ErrNotFound = errors.New("not found")
)
