// Package config defines process configuration and loading.
//
// Conventions:
// - Provide New() defaults and Load(ctx) for file/env layering.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"github.com/okian/podium/internal/auth"
	"github.com/okian/podium/internal/domain/metric"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the directory backing the key-value persistence store.
	DataDir string `koanf:"data_dir"`

	// DefaultMetric ranks the board when no selection has been stored.
	DefaultMetric string `koanf:"default_metric"`

	// AdminUser and AdminPass gate admin commands.
	AdminUser string `koanf:"admin_user"`
	AdminPass string `koanf:"admin_pass"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		DataDir:       ".podium",
		DefaultMetric: metric.DefaultID,
		AdminUser:     auth.DefaultUser,
		AdminPass:     auth.DefaultPassword,
	}
}
