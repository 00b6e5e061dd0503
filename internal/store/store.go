// Package store provides output sinks that keep blame results.
package store

import (
	"context"
	"errors"

	"github.com/wagiedev/tfsblame-go/internal/blame"
)

// ErrResultNotFound indicates no result is stored for a path.
var ErrResultNotFound = errors.New("blame result not found")

// Store is an output sink whose results can be read back.
type Store interface {
	blame.Output

	// Get returns the stored result for path.
	Get(ctx context.Context, path string) (*blame.Result, error)

	// Paths returns the stored paths in the order they were first stored.
	Paths(ctx context.Context) ([]string, error)
}
