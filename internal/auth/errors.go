package auth

import "errors"

// Sentinel kinds for auth errors.
var (
	ErrBadCredentials = errors.New("login credentials do not match")
	ErrNotAdmin       = errors.New("admin session required")
)
