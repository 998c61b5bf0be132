package collection

import "errors"

var (
	// ErrNotFound reports an update/remove target absent from the collection.
	ErrNotFound = errors.New("record not found")
	// ErrProtected reports a destructive operation against a protected record.
	ErrProtected = errors.New("record is protected")
	// ErrTerminal reports a mutation against a record in a terminal state.
	ErrTerminal = errors.New("record is in a terminal state")
	// ErrTransition reports a status step not allowed by the lifecycle table.
	ErrTransition = errors.New("status transition not allowed")
)
