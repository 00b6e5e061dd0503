package tfsblame

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadFile builds the InputFile of the file at path. Its line count is the
// number of newlines plus one, so a file ending with a newline has a trailing
// empty line.
func LoadFile(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := countLines(f)
	if err != nil {
		return nil, fmt.Errorf("count lines of %s: %w", path, err)
	}

	rel := path
	if filepath.IsAbs(path) {
		rel = filepath.Base(path)
	}

	return &File{Path: abs, RelPath: filepath.ToSlash(rel), LineCount: lines}, nil
}

// countLines returns the number of newlines in r plus one.
func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	lines := 1

	for {
		n, err := r.Read(buf)
		lines += bytes.Count(buf[:n], []byte{'\n'})

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return 0, err
		}
	}
}
