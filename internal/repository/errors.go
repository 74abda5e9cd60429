package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrCorruptData is returned when a stored record fails to decode
	// against its schema. Corrupt records hard-fail rather than being
	// skipped, so the operator sees the problem before balances drift.
	ErrCorruptData = errors.New("stored record is corrupt")
)
