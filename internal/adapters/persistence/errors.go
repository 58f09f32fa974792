package persistence

import "errors"

// Sentinel kinds for persistence errors.
var (
	// ErrCorruptState marks stored data that no longer deserializes.
	// It surfaces at startup and is not silently repaired.
	ErrCorruptState = errors.New("corrupt persisted state")
)
