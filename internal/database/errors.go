package database

import "errors"

var (
	// ErrUpdateTargetMissing is returned when an update matched no row.
	ErrUpdateTargetMissing = errors.New("update target missing")

	// ErrNoGeneratedKey is returned when an insert did not produce a primary key.
	ErrNoGeneratedKey = errors.New("insert did not yield a generated key")

	// ErrDanglingAuthor is returned when a stored book references an author
	// that no longer exists.
	ErrDanglingAuthor = errors.New("book references a missing author")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
