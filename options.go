package tfsblame

import (
	"log/slog"
	"time"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithExecutablePath sets the path of the annotate engine.
// If not set, the engine is searched via TFS_ANNOTATE_PATH and PATH.
func WithExecutablePath(path string) Option {
	return func(o *Options) {
		o.ExecutablePath = path
	}
}

// WithCwd sets the working directory of the engine process.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithEnv provides additional environment variables for the engine process.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithStderr sets a callback receiving every line the engine writes to its
// standard error.
func WithStderr(fn func(string)) Option {
	return func(o *Options) {
		o.Stderr = fn
	}
}

// WithMaxLineSize bounds the length of a line read from the engine.
func WithMaxLineSize(size int) Option {
	return func(o *Options) {
		o.MaxLineSize = size
	}
}

// WithDateLocation sets the location annotation dates are interpreted in.
// The default is time.Local.
func WithDateLocation(loc *time.Location) Option {
	return func(o *Options) {
		o.DateLocation = loc
	}
}

// WithSessions sets the number of engine processes BlameConcurrent runs.
func WithSessions(n int) Option {
	return func(o *Options) {
		o.Sessions = n
	}
}

// WithChannel replaces the engine process with the channels returned by
// newChannel, one per session.
func WithChannel(newChannel func() Channel) Option {
	return func(o *Options) {
		o.NewChannel = newChannel
	}
}
