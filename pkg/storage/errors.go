package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a create would violate a uniqueness
	// constraint (user email, pet type name, pet property name). Backends
	// enforce these constraints themselves, so this error is authoritative even
	// when a preceding existence check found nothing.
	ErrDuplicate = errors.New("duplicate entity")
)
