package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecutableNotFoundError(t *testing.T) {
	err := &ExecutableNotFoundError{
		SearchedPaths: []string{"$TFS_ANNOTATE_PATH", "$PATH"},
	}

	require.Equal(
		t,
		"TFS annotate executable not found in: [$TFS_ANNOTATE_PATH $PATH]",
		err.Error(),
	)
	require.True(t, err.IsBlameError())
}

func TestLaunchError(t *testing.T) {
	root := errors.New("permission denied")
	err := &LaunchError{Path: "/opt/tfs/SonarTfsAnnotate.exe", Err: root}

	require.Equal(t, "failed to launch /opt/tfs/SonarTfsAnnotate.exe: permission denied", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsBlameError())
}

func TestProtocolMismatchError(t *testing.T) {
	t.Run("different path", func(t *testing.T) {
		err := &ProtocolMismatchError{Expected: "/a.js", Actual: "/b.js"}
		require.Equal(t, "expected the file paths to match: /a.js and /b.js", err.Error())
	})

	t.Run("end of stream", func(t *testing.T) {
		err := &ProtocolMismatchError{Expected: "/a.js", EOF: true}
		require.Equal(t, "expected the file paths to match: /a.js and end of stream", err.Error())
	})
}

func TestLineCountError(t *testing.T) {
	root := errors.New("invalid syntax")
	err := &LineCountError{Path: "/a.js", Raw: "ten", Err: root}

	require.Equal(t, `invalid line count "ten" for /a.js: invalid syntax`, err.Error())
	require.ErrorIs(t, err, root)

	negative := &LineCountError{Path: "/a.js", Raw: "-1"}
	require.Equal(t, `invalid line count "-1" for /a.js`, negative.Error())
	require.NoError(t, negative.Unwrap())
}

func TestNoBlameInfoError(t *testing.T) {
	err := &NoBlameInfoError{Path: "src/a.js", Line: 3, Content: "local"}

	require.Equal(
		t,
		"unable to blame file src/a.js: no blame info at line 3, is the file committed? [local]",
		err.Error(),
	)
	require.True(t, err.IsBlameError())
}

func TestProcessError(t *testing.T) {
	t.Run("with stderr", func(t *testing.T) {
		err := &ProcessError{Path: "/bin/annotate", ExitCode: 2, Stderr: "TF30063: not authorized"}
		require.Equal(t, "the TFS blame command /bin/annotate failed with exit code 2: TF30063: not authorized", err.Error())
	})

	t.Run("without stderr", func(t *testing.T) {
		root := errors.New("exit status 2")
		err := &ProcessError{Path: "/bin/annotate", ExitCode: 2, Err: root}
		require.Equal(t, "the TFS blame command /bin/annotate failed with exit code 2", err.Error())
		require.ErrorIs(t, err, root)
	})
}

func TestRecoverableErrors(t *testing.T) {
	root := errors.New("month out of range")
	dateErr := &DateParseError{Value: "13/40/2020", Layout: "1/2/2006", Err: root}

	require.Equal(t, `failed to parse date "13/40/2020" with layout "1/2/2006": month out of range`, dateErr.Error())
	require.ErrorIs(t, dateErr, root)

	lineErr := &MalformedLineError{Line: 4, Content: "garbage"}
	require.Equal(t, `malformed annotation at line 4: "garbage"`, lineErr.Error())
	require.True(t, lineErr.IsBlameError())
}

func TestErrorsAsType(t *testing.T) {
	var err error = &TruncatedResponseError{Path: "/a.js", Expected: 3, Received: 1}

	wrapped := errors.Join(errors.New("session failed"), err)

	truncated, ok := errors.AsType[*TruncatedResponseError](wrapped)
	require.True(t, ok)
	require.Equal(t, 1, truncated.Received)
}
