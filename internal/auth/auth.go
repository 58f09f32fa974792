// Package auth gates admin actions behind a trivial credential check.
//
// This is deliberately not hardened: the competition runs on a trusted
// machine and the gate only keeps participants out of admin commands.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/adapters/persistence"
)

// Default admin credentials, overridable through configuration.
const (
	DefaultUser     = "admin"
	DefaultPassword = "admin123"
)

// Option applies a configuration option to the Gate.
type Option func(*Gate)

// WithCredentials overrides the expected admin credentials.
func WithCredentials(user, pass string) Option {
	return func(g *Gate) {
		if user != "" {
			g.user = user
		}
		if pass != "" {
			g.pass = pass
		}
	}
}

// Gate checks admin credentials and tracks the session through the
// persistence bridge so a login survives process restarts.
type Gate struct {
	user   string
	pass   string
	bridge *persistence.Bridge
}

// NewGate creates a gate persisting its session through bridge.
func NewGate(bridge *persistence.Bridge, opts ...Option) *Gate {
	g := &Gate{
		user:   DefaultUser,
		pass:   DefaultPassword,
		bridge: bridge,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login validates credentials and stores a fresh session token.
func (g *Gate) Login(ctx context.Context, user, pass string) error {
	if user != g.user || pass != g.pass {
		return ErrBadCredentials
	}
	return g.bridge.SaveSession(ctx, uuid.NewString())
}

// Logout clears any stored session.
func (g *Gate) Logout(ctx context.Context) error {
	return g.bridge.ClearSession(ctx)
}

// IsAdmin reports whether an admin session is active.
func (g *Gate) IsAdmin(ctx context.Context) (bool, error) {
	token, found, err := g.bridge.LoadSession(ctx)
	if err != nil {
		return false, err
	}
	return found && token != "", nil
}
