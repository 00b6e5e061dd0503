package tfsblame

import "github.com/wagiedev/tfsblame-go/internal/errors"

// Re-export error types from internal package

// BlameError is the base interface for all driver errors.
type BlameError = errors.BlameError

// ExecutableNotFoundError indicates the annotate engine binary was not found.
type ExecutableNotFoundError = errors.ExecutableNotFoundError

// LaunchError indicates the engine process could not be started.
type LaunchError = errors.LaunchError

// ProtocolMismatchError indicates the engine answered for another file or
// stopped answering where a file path was expected.
type ProtocolMismatchError = errors.ProtocolMismatchError

// LineCountError indicates the engine sent an invalid line count.
type LineCountError = errors.LineCountError

// TruncatedResponseError indicates the engine stopped in the middle of a response.
type TruncatedResponseError = errors.TruncatedResponseError

// NoBlameInfoError indicates the engine has no history for a line of a file.
type NoBlameInfoError = errors.NoBlameInfoError

// ProcessError indicates the engine exited with a nonzero status.
type ProcessError = errors.ProcessError

// OutputError indicates the output rejected a result.
type OutputError = errors.OutputError

// DateParseError indicates an annotation date could not be parsed. It is only logged.
type DateParseError = errors.DateParseError

// MalformedLineError indicates an annotation line was skipped. It is only logged.
type MalformedLineError = errors.MalformedLineError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionUsed indicates a session was run more than once.
	ErrSessionUsed = errors.ErrSessionUsed

	// ErrChannelClosed indicates the process channel was already released.
	ErrChannelClosed = errors.ErrChannelClosed

	// ErrChannelNotOpen indicates the process channel has not been opened.
	ErrChannelNotOpen = errors.ErrChannelNotOpen
)
