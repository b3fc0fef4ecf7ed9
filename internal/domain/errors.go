package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrIndexOutOfRange indicates a positional cart operation referenced
	// a line that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)
