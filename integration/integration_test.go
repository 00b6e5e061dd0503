//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tfsblame "github.com/wagiedev/tfsblame-go"
)

// skipIfEngineNotInstalled skips the test if the error indicates the engine is not found.
func skipIfEngineNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*tfsblame.ExecutableNotFoundError](err); ok {
		t.Skip("SonarTfsAnnotate not installed")
	}
}

// workspaceFile returns a committed file of a TFS workspace, taken from
// TFS_TEST_FILE.
func workspaceFile(t *testing.T) string {
	t.Helper()

	path := os.Getenv("TFS_TEST_FILE")
	if path == "" {
		t.Skip("TFS_TEST_FILE not set")
	}

	return path
}

func TestBlame_CommittedFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	file, err := tfsblame.LoadFile(workspaceFile(t))
	require.NoError(t, err)

	store := tfsblame.NewMemoryStore()

	err = tfsblame.Blame(ctx, []tfsblame.InputFile{file}, store)
	skipIfEngineNotInstalled(t, err)
	require.NoError(t, err)

	result, err := store.Get(ctx, file.AbsolutePath())
	require.NoError(t, err)
	require.Len(t, result.Lines, file.Lines())

	for i, line := range result.Lines {
		require.NotEmpty(t, line.Revision, "line %d", i+1)
		require.NotEmpty(t, line.Author, "line %d", i+1)
	}
}

func TestBlame_ConcurrentSessions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	file, err := tfsblame.LoadFile(workspaceFile(t))
	require.NoError(t, err)

	copies := []tfsblame.InputFile{file, file, file, file}

	var count int

	out := tfsblame.OutputFunc(func(context.Context, tfsblame.InputFile, *tfsblame.Result) error {
		count++

		return nil
	})

	// One session so the counter needs no lock.
	err = tfsblame.BlameConcurrent(ctx, copies, out, tfsblame.WithSessions(1))
	skipIfEngineNotInstalled(t, err)
	require.NoError(t, err)
	require.Equal(t, len(copies), count)
}

func TestBlame_MissingEngine(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file := &tfsblame.File{Path: "/nonexistent/a.cs", LineCount: 1}

	err := tfsblame.Blame(ctx, []tfsblame.InputFile{file}, tfsblame.NewMemoryStore(),
		tfsblame.WithExecutablePath("/nonexistent/SonarTfsAnnotate.exe"))

	_, ok := errors.AsType[*tfsblame.ExecutableNotFoundError](err)
	require.True(t, ok, "got %v", err)
}
