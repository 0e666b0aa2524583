package aptlist

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrEmptyContainer is returned when a record is removed from a list without records.
	ErrEmptyContainer errorkit.Error = "aptlist: list is empty"
	// ErrIndexOutOfRange is returned by positional access outside of [0, Len()).
	ErrIndexOutOfRange errorkit.Error = "aptlist: index out of range"
	// ErrNotFound is returned when no record has the requested apartment number.
	ErrNotFound errorkit.Error = "aptlist: apartment not found"
)
