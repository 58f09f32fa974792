package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrUnknownMetric = errors.New("unknown metric")
)
