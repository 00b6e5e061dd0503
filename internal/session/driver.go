package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/tfsblame-go/internal/blame"
	"github.com/wagiedev/tfsblame-go/internal/config"
	"github.com/wagiedev/tfsblame-go/internal/errors"
	"github.com/wagiedev/tfsblame-go/internal/protocol"
)

// State is the lifecycle state of a Driver.
type State int

const (
	// StateIdle is the state of a Driver that has not been run.
	StateIdle State = iota
	// StateRunning is the state of a Driver exchanging files with the engine.
	StateRunning
	// StateClosed is the state of a Driver whose channel has been released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// pather is implemented by channels that know the engine path.
type pather interface {
	Path() string
}

// Driver runs one blame session over a channel.
type Driver struct {
	log     *slog.Logger
	ch      config.Channel
	options *config.Options
	id      string

	mu    sync.Mutex
	state State
}

// New creates a Driver that owns ch.
func New(log *slog.Logger, ch config.Channel, options *config.Options) *Driver {
	if options == nil {
		options = &config.Options{}
	}

	id := ulid.Make().String()

	return &Driver{
		log:     log.With("component", "session", "session_id", id),
		ch:      ch,
		options: options,
		id:      id,
	}
}

// ID returns the identifier of the session, attached to every result.
func (d *Driver) ID() string {
	return d.id
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = s
}

// Run annotates files in order and hands each result to out.
//
// The session stops at the first fatal error: ProtocolMismatchError,
// NoBlameInfoError, LineCountError, TruncatedResponseError, OutputError, or
// ProcessError when the engine exits with a nonzero status. If the engine
// closes its output before sending a line count, the remaining files are not
// annotated and the session ends normally. The channel is released before
// Run returns.
func (d *Driver) Run(ctx context.Context, files []blame.InputFile, out blame.Output) error {
	d.mu.Lock()

	if d.state != StateIdle {
		d.mu.Unlock()

		return errors.ErrSessionUsed
	}

	d.state = StateRunning
	d.mu.Unlock()

	defer d.release()

	if err := ctx.Err(); err != nil {
		return err
	}

	d.log.Info("Starting blame session", "files", len(files))

	if err := d.ch.Open(ctx); err != nil {
		d.log.Error("Failed to open process channel", "error", err)

		return err
	}

	processed, err := d.exchange(ctx, files, out)
	if err != nil {
		return d.fail(ctx, err)
	}

	if err := d.ch.CloseInput(); err != nil {
		return d.fail(ctx, fmt.Errorf("close engine input: %w", err))
	}

	code, err := d.ch.Wait()
	if ctx.Err() != nil {
		return d.fail(ctx, err)
	}

	if code != 0 {
		return d.fail(ctx, &errors.ProcessError{
			Path:     d.enginePath(),
			ExitCode: code,
			Stderr:   d.ch.Stderr(),
			Err:      err,
		})
	}

	if err != nil {
		return d.fail(ctx, err)
	}

	d.log.Info("Blame session completed", "files", len(files), "blamed", processed)

	return nil
}

// exchange sends every file and decodes its response, returning the number
// of files handed to out.
func (d *Driver) exchange(ctx context.Context, files []blame.InputFile, out blame.Output) (int, error) {
	enc := protocol.NewEncoder(d.ch)
	dec := protocol.NewDecoder(d.log, d.ch, d.options.Location())

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		path := file.AbsolutePath()

		d.log.Debug("Blaming file", "path", path, "lines", file.Lines())

		if err := enc.Send(path); err != nil {
			return i, err
		}

		lines, err := dec.Receive(path, file.Lines())
		if stderrors.Is(err, errors.ErrEndOfSession) {
			d.log.Info("Engine ended the session early", "path", path, "remaining", len(files)-i)

			return i, nil
		}

		if noBlame, ok := stderrors.AsType[*errors.NoBlameInfoError](err); ok {
			noBlame.Path = file.RelativePath()
		}

		if err != nil {
			return i, err
		}

		result := &blame.Result{Path: path, SessionID: d.id, Lines: lines}
		if err := out.BlameResult(ctx, file, result); err != nil {
			return i, &errors.OutputError{Path: path, Err: err}
		}
	}

	return len(files), nil
}

// fail logs a fatal error and returns it, preferring the context error when
// the session was cancelled.
func (d *Driver) fail(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		d.log.Debug("Blame session cancelled", "error", err)

		if err == nil || stderrors.Is(err, ctxErr) {
			return ctxErr
		}

		return stderrors.Join(ctxErr, err)
	}

	d.log.Error("Blame session failed", "error", err)

	return err
}

// release closes the channel. Release failures are logged, never returned.
func (d *Driver) release() {
	if err := d.ch.Close(); err != nil {
		d.log.Warn("Failed to release process channel", "error", err)
	}

	d.setState(StateClosed)
}

func (d *Driver) enginePath() string {
	if p, ok := d.ch.(pather); ok {
		return p.Path()
	}

	return ""
}
