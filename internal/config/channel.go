package config

import (
	"context"
	"io"
)

// Channel is the bidirectional line channel to the annotate engine.
// Implement this to provide custom channels for testing or alternative
// ways of reaching the engine.
//
// The default implementation is subprocess.Channel which spawns the engine
// as a child process. A Channel serves exactly one session and is not safe
// for concurrent use.
type Channel interface {
	// Open starts the engine and acquires its input and output streams.
	Open(ctx context.Context) error

	// Writer receives the encoded requests. Each Write is handed to the
	// engine before it returns.
	io.Writer

	// ReadLine returns the next response line without its terminator.
	// It returns io.EOF once the engine has closed its output.
	ReadLine() (string, error)

	// CloseInput signals the engine that no more requests will be sent.
	CloseInput() error

	// Wait blocks until the engine exits and returns its exit code.
	Wait() (int, error)

	// Stderr returns what the engine wrote to its standard error so far.
	Stderr() string

	// Close releases every stream of the channel. It is safe to call Close
	// multiple times.
	Close() error
}
