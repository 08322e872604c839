package models

import (
	"errors"
	"fmt"
)

// The coordinator reports every precondition failure as one of these two
// kinds. Callers match with errors.Is and read the concrete type for context.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// NotFoundError reports that a referenced order or payment does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidStateError reports an operation that would violate a business
// invariant, carrying the state that blocked it.
type InvalidStateError struct {
	Entity string
	ID     string
	State  string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s in state %s: %s", e.Entity, e.ID, e.State, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
