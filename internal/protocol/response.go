package protocol

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/wagiedev/tfsblame-go/internal/blame"
	"github.com/wagiedev/tfsblame-go/internal/errors"
)

// LineReader yields the engine's output one line at a time, returning io.EOF
// once the output is closed.
type LineReader interface {
	ReadLine() (string, error)
}

// Decoder reads annotation responses.
type Decoder struct {
	log *slog.Logger
	r   LineReader
	loc *time.Location
}

// NewDecoder creates a Decoder reading from r. Dates are interpreted in loc,
// or time.Local when loc is nil.
func NewDecoder(log *slog.Logger, r LineReader, loc *time.Location) *Decoder {
	if loc == nil {
		loc = time.Local
	}

	return &Decoder{
		log: log.With("component", "decoder"),
		r:   r,
		loc: loc,
	}
}

// Receive reads the response to the request for expectedPath.
//
// It returns ProtocolMismatchError when the echoed path is missing or
// differs, ErrEndOfSession when the engine closes its output before the line
// count, and NoBlameInfoError when the engine has no history for a line.
// The returned records are padded per PadTrailingLine against totalLines.
func (d *Decoder) Receive(expectedPath string, totalLines int) ([]blame.Line, error) {
	path, err := d.r.ReadLine()
	if stderrors.Is(err, io.EOF) {
		return nil, &errors.ProtocolMismatchError{Expected: expectedPath, EOF: true}
	}

	if err != nil {
		return nil, fmt.Errorf("read path: %w", err)
	}

	if path != expectedPath {
		return nil, &errors.ProtocolMismatchError{Expected: expectedPath, Actual: path}
	}

	raw, err := d.r.ReadLine()
	if stderrors.Is(err, io.EOF) {
		d.log.Debug("Engine output closed before line count", "path", expectedPath)

		return nil, errors.ErrEndOfSession
	}

	if err != nil {
		return nil, fmt.Errorf("read line count: %w", err)
	}

	count, err := strconv.ParseInt(raw, 10, 0)
	if err != nil {
		return nil, &errors.LineCountError{Path: expectedPath, Raw: raw, Err: err}
	}

	if count < 0 {
		return nil, &errors.LineCountError{Path: expectedPath, Raw: raw}
	}

	d.log.Debug("Receiving annotations", "path", expectedPath, "count", count)

	lines := make([]blame.Line, 0, min(int(count), max(totalLines, 0)))

	for i := range int(count) {
		text, err := d.r.ReadLine()
		if stderrors.Is(err, io.EOF) {
			return nil, &errors.TruncatedResponseError{Path: expectedPath, Expected: int(count), Received: i}
		}

		if err != nil {
			return nil, fmt.Errorf("read annotation %d: %w", i+1, err)
		}

		if IsNoBlameMarker(text) {
			return nil, &errors.NoBlameInfoError{Path: expectedPath, Line: i + 1, Content: text}
		}

		line, ok, err := ParseLine(text, d.loc)
		if !ok {
			d.log.Debug("Skipping malformed annotation",
				"error", &errors.MalformedLineError{Line: i + 1, Content: text})

			continue
		}

		if err != nil {
			d.log.Warn("Skipping unparseable annotation date",
				"path", expectedPath, "line", i+1, "location", d.loc.String(), "error", err)
		}

		lines = append(lines, line)
	}

	return PadTrailingLine(lines, totalLines), nil
}
