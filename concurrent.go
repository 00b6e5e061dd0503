package tfsblame

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BlameConcurrent annotates files with up to WithSessions(n) independent
// sessions, each owning its own engine process. The files are split into
// contiguous batches, so results of one batch keep their relative order.
//
// The first failing session cancels the others, whose engines are killed.
// out must be safe for concurrent use.
func BlameConcurrent(ctx context.Context, files []InputFile, out Output, opts ...Option) error {
	cmd := NewCommand(opts...)

	batches := partition(files, cmd.options.SessionCount())

	cmd.log.Debug("Starting concurrent blame", "files", len(files), "sessions", len(batches))

	g, gCtx := errgroup.WithContext(ctx)

	for _, batch := range batches {
		g.Go(func() error {
			return cmd.Blame(gCtx, batch, out)
		})
	}

	return g.Wait()
}

// partition splits files into at most n contiguous, non-empty batches whose
// sizes differ by at most one.
func partition(files []InputFile, n int) [][]InputFile {
	if len(files) == 0 {
		return nil
	}

	n = max(1, min(n, len(files)))
	size, extra := len(files)/n, len(files)%n

	batches := make([][]InputFile, 0, n)

	start := 0
	for i := range n {
		end := start + size
		if i < extra {
			end++
		}

		batches = append(batches, files[start:end])
		start = end
	}

	return batches
}
