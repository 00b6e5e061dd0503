package errors

import (
	"errors"
	"fmt"
)

// BlameError is the base interface for all driver errors.
type BlameError interface {
	error
	IsBlameError() bool
}

// Compile-time verification that all error types implement BlameError.
var (
	_ BlameError = (*ExecutableNotFoundError)(nil)
	_ BlameError = (*LaunchError)(nil)
	_ BlameError = (*ProtocolMismatchError)(nil)
	_ BlameError = (*LineCountError)(nil)
	_ BlameError = (*TruncatedResponseError)(nil)
	_ BlameError = (*NoBlameInfoError)(nil)
	_ BlameError = (*ProcessError)(nil)
	_ BlameError = (*OutputError)(nil)
	_ BlameError = (*DateParseError)(nil)
	_ BlameError = (*MalformedLineError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrChannelNotOpen indicates the process channel has not been opened.
	ErrChannelNotOpen = errors.New("channel not open")

	// ErrChannelClosed indicates the process channel was already released.
	ErrChannelClosed = errors.New("channel closed")

	// ErrEndOfSession indicates the engine closed its output before sending a
	// line count. It ends the session without failing it.
	ErrEndOfSession = errors.New("end of session")

	// ErrSessionUsed indicates a session driver was run more than once.
	ErrSessionUsed = errors.New("session already used: sessions are single-use")
)

// ExecutableNotFoundError indicates the annotate engine binary was not found.
type ExecutableNotFoundError struct {
	SearchedPaths []string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("TFS annotate executable not found in: %v", e.SearchedPaths)
}

// IsBlameError implements BlameError.
func (e *ExecutableNotFoundError) IsBlameError() bool { return true }

// LaunchError indicates the engine process could not be started.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsBlameError implements BlameError.
func (e *LaunchError) IsBlameError() bool { return true }

// ProtocolMismatchError indicates the engine echoed a path other than the one
// requested, or closed its output where a path was expected. The driver and
// the engine are out of step and the session cannot continue.
type ProtocolMismatchError struct {
	Expected string
	Actual   string
	EOF      bool
}

func (e *ProtocolMismatchError) Error() string {
	if e.EOF {
		return fmt.Sprintf("expected the file paths to match: %s and end of stream", e.Expected)
	}

	return fmt.Sprintf("expected the file paths to match: %s and %s", e.Expected, e.Actual)
}

// IsBlameError implements BlameError.
func (e *ProtocolMismatchError) IsBlameError() bool { return true }

// LineCountError indicates the line count sent by the engine is not a
// non-negative base-10 integer.
type LineCountError struct {
	Path string
	Raw  string
	Err  error
}

func (e *LineCountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid line count %q for %s: %v", e.Raw, e.Path, e.Err)
	}

	return fmt.Sprintf("invalid line count %q for %s", e.Raw, e.Path)
}

func (e *LineCountError) Unwrap() error {
	return e.Err
}

// IsBlameError implements BlameError.
func (e *LineCountError) IsBlameError() bool { return true }

// TruncatedResponseError indicates the engine closed its output before sending
// all the annotation lines it announced.
type TruncatedResponseError struct {
	Path     string
	Expected int
	Received int
}

func (e *TruncatedResponseError) Error() string {
	return fmt.Sprintf("truncated response for %s: expected %d lines, received %d",
		e.Path, e.Expected, e.Received)
}

// IsBlameError implements BlameError.
func (e *TruncatedResponseError) IsBlameError() bool { return true }

// NoBlameInfoError indicates the engine has no history for a line of the file,
// typically because the file is not committed.
type NoBlameInfoError struct {
	Path    string
	Line    int // 1-based
	Content string
}

func (e *NoBlameInfoError) Error() string {
	return fmt.Sprintf("unable to blame file %s: no blame info at line %d, is the file committed? [%s]",
		e.Path, e.Line, e.Content)
}

// IsBlameError implements BlameError.
func (e *NoBlameInfoError) IsBlameError() bool { return true }

// ProcessError indicates the engine process exited with a nonzero status.
type ProcessError struct {
	Path     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("the TFS blame command %s failed with exit code %d", e.Path, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsBlameError implements BlameError.
func (e *ProcessError) IsBlameError() bool { return true }

// OutputError indicates the output sink rejected the result of a file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to store blame result for %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// IsBlameError implements BlameError.
func (e *OutputError) IsBlameError() bool { return true }

// DateParseError indicates the date of an annotation line could not be parsed.
// The line is still reported, without a date.
type DateParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q with layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// IsBlameError implements BlameError.
func (e *DateParseError) IsBlameError() bool { return true }

// MalformedLineError indicates an annotation line that does not have the
// revision, author and date shape. Such lines are skipped.
type MalformedLineError struct {
	Line    int // 1-based
	Content string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed annotation at line %d: %q", e.Line, e.Content)
}

// IsBlameError implements BlameError.
func (e *MalformedLineError) IsBlameError() bool { return true }
