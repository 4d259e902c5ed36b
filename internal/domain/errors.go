package domain

import "errors"

// Error kinds crossing the storage/service boundary. The HTTP layer maps each
// one to a status code.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidReading = errors.New("invalid reading")
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidHouse   = errors.New("invalid house")
	ErrAlreadyExists  = errors.New("already exists")
)
