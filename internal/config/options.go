// Package config provides configuration types for the TFS blame driver.
package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultMaxLineSize is the default maximum length of a line read from the engine.
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// Options configures a blame session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// ExecutablePath is the path to the already extracted annotate engine.
	// If empty, the engine is searched via TFS_ANNOTATE_PATH and PATH.
	ExecutablePath string

	// Cwd sets the working directory of the engine process.
	// If empty, the current working directory is used.
	Cwd string

	// Env provides additional environment variables for the engine process.
	Env map[string]string

	// Stderr is called with every line the engine writes to its standard error.
	Stderr func(string)

	// MaxLineSize bounds the length of a single line read from the engine.
	// Zero means DefaultMaxLineSize.
	MaxLineSize int

	// DateLocation is the location annotation dates are interpreted in.
	// If nil, time.Local is used.
	DateLocation *time.Location

	// Sessions is the number of independent engine processes used by
	// concurrent blaming. Values below 1 mean one session.
	Sessions int

	// NewChannel overrides the process channel. It is called once per
	// session, since a channel cannot be reused. Used by tests and by callers
	// that reach the engine through something other than a local process.
	NewChannel func() Channel
}

// Location returns the configured date location, defaulting to time.Local.
func (o *Options) Location() *time.Location {
	if o == nil || o.DateLocation == nil {
		return time.Local
	}

	return o.DateLocation
}

// LineSize returns the configured maximum line size, defaulting to DefaultMaxLineSize.
func (o *Options) LineSize() int {
	if o == nil || o.MaxLineSize <= 0 {
		return DefaultMaxLineSize
	}

	return o.MaxLineSize
}

// SessionCount returns the configured number of sessions, at least one.
func (o *Options) SessionCount() int {
	if o == nil || o.Sessions < 1 {
		return 1
	}

	return o.Sessions
}
