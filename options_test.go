package tfsblame

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	logger := slog.Default()
	stderr := func(string) {}
	newChannel := func() Channel { return &scriptedChannel{} }

	options := applyOptions([]Option{
		WithLogger(logger),
		WithExecutablePath("/opt/tfs/SonarTfsAnnotate.exe"),
		WithCwd("/src"),
		WithEnv(map[string]string{"TFS_COLLECTION": "http://tfs:8080/tfs"}),
		WithStderr(stderr),
		WithMaxLineSize(4096),
		WithDateLocation(time.UTC),
		WithSessions(3),
		WithChannel(newChannel),
	})

	require.Same(t, logger, options.Logger)
	require.Equal(t, "/opt/tfs/SonarTfsAnnotate.exe", options.ExecutablePath)
	require.Equal(t, "/src", options.Cwd)
	require.Equal(t, "http://tfs:8080/tfs", options.Env["TFS_COLLECTION"])
	require.NotNil(t, options.Stderr)
	require.Equal(t, 4096, options.LineSize())
	require.Equal(t, time.UTC, options.Location())
	require.Equal(t, 3, options.SessionCount())
	require.NotNil(t, options.NewChannel)
}

func TestNewCommand_DefaultsToNopLogger(t *testing.T) {
	cmd := NewCommand()

	require.NotNil(t, cmd.log)
	require.Nil(t, cmd.options.Logger)
}
