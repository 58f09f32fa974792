package parse

import "errors"

// Sentinel kinds for parse errors.
var (
	ErrNotNumeric = errors.New("non-numeric value in data")
)
