package protocol

import (
	"bufio"
	"fmt"
	"io"
)

// Terminator ends every request line. The engine expects it regardless of
// the platform the driver runs on.
const Terminator = "\r\n"

// Encoder writes annotation requests.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Send writes path followed by Terminator and flushes it, so the engine can
// start on the file before Send returns.
func (e *Encoder) Send(path string) error {
	if _, err := e.w.WriteString(path + Terminator); err != nil {
		return fmt.Errorf("send %s: %w", path, err)
	}

	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return nil
}
