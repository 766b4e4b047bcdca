package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputClosed indicates the input stream ended before a valid
	// answer was read.
	ErrInputClosed = errors.New("input closed")

	// ErrInvalidBackend indicates an unknown storage backend name.
	ErrInvalidBackend = errors.New("invalid storage backend")

	// ErrInvalidInterface indicates an unknown interface mode name.
	ErrInvalidInterface = errors.New("invalid interface mode")
)
