package store

import (
	"context"
	"slices"
	"sync"

	"github.com/wagiedev/tfsblame-go/internal/blame"
)

// Memory keeps results in process memory. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	order   []string
	results map[string]*blame.Result
}

// Compile-time verification that Memory implements Store.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{results: make(map[string]*blame.Result)}
}

// BlameResult implements blame.Output. A later result for the same path
// replaces the earlier one.
func (m *Memory) BlameResult(_ context.Context, file blame.InputFile, result *blame.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := file.AbsolutePath()
	if _, ok := m.results[path]; !ok {
		m.order = append(m.order, path)
	}

	stored := *result
	stored.Lines = slices.Clone(result.Lines)
	m.results[path] = &stored

	return nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, path string) (*blame.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, ok := m.results[path]
	if !ok {
		return nil, ErrResultNotFound
	}

	clone := *result
	clone.Lines = slices.Clone(result.Lines)

	return &clone, nil
}

// Paths implements Store.
func (m *Memory) Paths(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.order), nil
}

// Len returns the number of stored results.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.results)
}
