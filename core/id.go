package core

import "github.com/google/uuid"

// NewID generates a new unique identifier for calculations.
//
// The engine stamps one on every dispatch so related log entries can be
// correlated across a call.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }
