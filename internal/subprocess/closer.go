package subprocess

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// namedCloser pairs a stream with the name used when reporting its release.
type namedCloser struct {
	name   string
	closer io.Closer
}

// closeAll closes every closer, in order, regardless of earlier failures.
// Streams that were already released are not reported. The remaining
// failures are logged and returned joined.
func closeAll(log *slog.Logger, closers ...namedCloser) error {
	var errs []error

	for _, nc := range closers {
		if nc.closer == nil {
			continue
		}

		err := nc.closer.Close()
		if err == nil || stderrors.Is(err, os.ErrClosed) {
			continue
		}

		log.Warn("Failed to release stream", "stream", nc.name, "error", err)
		errs = append(errs, fmt.Errorf("close %s: %w", nc.name, err))
	}

	return stderrors.Join(errs...)
}
