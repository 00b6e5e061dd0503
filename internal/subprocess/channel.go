package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/wagiedev/tfsblame-go/internal/config"
	"github.com/wagiedev/tfsblame-go/internal/errors"
	"github.com/wagiedev/tfsblame-go/internal/executable"
)

const (
	// maxStderrBufferSize is the maximum size for the stderr buffer.
	// Stderr reading continues until the engine exits (callback receives all lines),
	// but the buffer stops growing after this limit.
	maxStderrBufferSize = 1024 * 1024 // 1MB
)

// Channel implements config.Channel by spawning the annotate engine as a
// child process and talking to it over its standard streams.
type Channel struct {
	log     *slog.Logger
	options *config.Options
	path    string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	stderr  io.ReadCloser
	scanner *bufio.Scanner

	stderrWg  sync.WaitGroup
	stderrMu  sync.Mutex
	stderrBuf strings.Builder

	mu          sync.Mutex
	inputClosed bool
	waited      bool
	closed      bool
}

// Compile-time verification that Channel implements the Channel interface.
var _ config.Channel = (*Channel)(nil)

// NewChannel creates a process channel. Nothing is spawned until Open.
func NewChannel(log *slog.Logger, options *config.Options) *Channel {
	if options == nil {
		options = &config.Options{}
	}

	return &Channel{
		log:     log.With("component", "process_channel"),
		options: options,
	}
}

// Open locates the engine and starts it with no arguments.
//
// Returns ExecutableNotFoundError if the engine cannot be located, or
// LaunchError if the process fails to start. The process is killed when ctx
// is cancelled.
func (c *Channel) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrChannelClosed
	}

	discoverer := executable.NewDiscoverer(&executable.Config{
		Path:   c.options.ExecutablePath,
		Logger: c.log,
	})

	path, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover executable: %w", err)
	}

	c.path = path
	c.log.Debug("Executing the TFS blame command", "path", path)

	//nolint:gosec // G204: the engine path is configuration, not user input
	cmd := exec.CommandContext(ctx, path)
	cmd.Env = executable.BuildEnvironment(c.options.Env)
	cmd.Dir = c.options.Cwd

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.LaunchError{Path: path, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		_ = stdin.Close()

		return &errors.LaunchError{Path: path, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = stdin.Close()
		_ = stdout.Close()

		return &errors.LaunchError{Path: path, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		c.log.Error("Failed to start TFS annotate process", "path", path, "error", err)

		_ = stdin.Close()
		_ = stdout.Close()
		_ = stderr.Close()

		return &errors.LaunchError{Path: path, Err: err}
	}

	c.cmd = cmd
	c.stdin = stdin
	c.stdout = stdout
	c.stderr = stderr

	c.scanner = bufio.NewScanner(stdout)
	size := c.options.LineSize()
	c.scanner.Buffer(make([]byte, 0, min(size, 64*1024)), size)

	c.stderrWg.Go(c.drainStderr)

	c.log.Info("TFS annotate process started", "pid", cmd.Process.Pid)

	return nil
}

// drainStderr buffers the engine's stderr so the engine never blocks on a
// full pipe. It returns once the stream is closed.
func (c *Channel) drainStderr() {
	scanner := bufio.NewScanner(c.stderr)
	for scanner.Scan() {
		line := scanner.Text()

		c.stderrMu.Lock()

		if c.stderrBuf.Len() < maxStderrBufferSize {
			if c.stderrBuf.Len() > 0 {
				c.stderrBuf.WriteString("\n")
			}

			c.stderrBuf.WriteString(line)
		}

		c.stderrMu.Unlock()

		if c.options.Stderr != nil {
			c.options.Stderr(line)
		}
	}

	// Don't fail - the process may have exited or been killed
	if err := scanner.Err(); err != nil {
		c.log.Debug("Stderr scanner error", "error", err)
	}
}

// Write writes p to the engine's standard input.
func (c *Channel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		return 0, errors.ErrChannelClosed
	case c.stdin == nil:
		return 0, errors.ErrChannelNotOpen
	case c.inputClosed:
		return 0, fmt.Errorf("write to stdin: %w", os.ErrClosed)
	}

	n, err := c.stdin.Write(p)
	if err != nil {
		return n, fmt.Errorf("write to stdin: %w", err)
	}

	return n, nil
}

// ReadLine returns the next line of the engine's standard output, without
// its "\n" or "\r\n" terminator. It returns io.EOF once the output is closed.
func (c *Channel) ReadLine() (string, error) {
	if c.scanner == nil {
		return "", errors.ErrChannelNotOpen
	}

	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}

	if err := c.scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdout: %w", err)
	}

	return "", io.EOF
}

// CloseInput closes the engine's standard input to signal that no more
// requests will be sent.
func (c *Channel) CloseInput() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stdin == nil || c.inputClosed {
		return nil
	}

	c.log.Debug("Closing stdin pipe")
	c.inputClosed = true

	return c.stdin.Close()
}

// Wait blocks until the engine exits. A nonzero exit code is returned
// together with the *exec.ExitError describing it.
func (c *Channel) Wait() (int, error) {
	c.mu.Lock()
	cmd := c.cmd
	c.mu.Unlock()

	if cmd == nil {
		return -1, errors.ErrChannelNotOpen
	}

	// Stderr reads must complete before Wait closes the pipe.
	c.stderrWg.Wait()

	c.log.Debug("Waiting for TFS annotate process to exit")

	err := cmd.Wait()

	c.mu.Lock()
	c.waited = true
	c.mu.Unlock()

	if err == nil {
		c.log.Info("TFS annotate process exited successfully")

		return 0, nil
	}

	if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
		c.log.Debug("TFS annotate process exited with error", "exit_code", exitErr.ExitCode())

		return exitErr.ExitCode(), exitErr
	}

	return -1, fmt.Errorf("wait for process: %w", err)
}

// Path returns the engine path resolved by Open.
func (c *Channel) Path() string {
	return c.path
}

// Stderr returns the buffered standard error of the engine.
func (c *Channel) Stderr() string {
	c.stderrMu.Lock()
	defer c.stderrMu.Unlock()

	return strings.TrimSpace(c.stderrBuf.String())
}

// Close releases the standard input, output and error streams of the engine.
// Every stream is released even when releasing another one fails; failures
// are logged and returned joined. A process that is still running is killed
// and reaped. It's safe to call Close multiple times.
func (c *Channel) Close() error {
	c.mu.Lock()

	if c.closed || c.cmd == nil {
		c.closed = true
		c.mu.Unlock()

		return nil
	}

	c.closed = true
	running := !c.waited
	cmd := c.cmd
	c.mu.Unlock()

	if running && cmd.Process != nil {
		c.log.Debug("Killing TFS annotate process", "pid", cmd.Process.Pid)

		if err := cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
			c.log.Warn("Failed to kill TFS annotate process", "pid", cmd.Process.Pid, "error", err)
		}
	}

	err := closeAll(c.log,
		namedCloser{"stdin", c.stdin},
		namedCloser{"stdout", c.stdout},
		namedCloser{"stderr", c.stderr},
	)

	if running {
		c.stderrWg.Wait()

		// Reap the killed process; its exit status is meaningless here.
		_ = cmd.Wait()

		c.mu.Lock()
		c.waited = true
		c.mu.Unlock()
	}

	return err
}
