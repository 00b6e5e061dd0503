package tfsblame

import (
	"context"
	"log/slog"

	"github.com/wagiedev/tfsblame-go/internal/config"
	"github.com/wagiedev/tfsblame-go/internal/session"
	"github.com/wagiedev/tfsblame-go/internal/subprocess"
)

// Command runs blame sessions with a fixed configuration. Every call to
// Blame spawns a fresh engine process.
type Command struct {
	options *Options
	log     *slog.Logger
}

// NewCommand creates a Command configured by opts.
func NewCommand(opts ...Option) *Command {
	options := applyOptions(opts)

	return &Command{
		options: options,
		log:     loggerFor(options),
	}
}

// Blame annotates files in one session and hands every result to out, in
// the order of files. See the package documentation for the errors it returns.
func (c *Command) Blame(ctx context.Context, files []InputFile, out Output) error {
	return session.New(c.log, c.newChannel(), c.options).Run(ctx, files, out)
}

func (c *Command) newChannel() config.Channel {
	if c.options.NewChannel != nil {
		return c.options.NewChannel()
	}

	return subprocess.NewChannel(c.log, c.options)
}

// Blame annotates files in a single session configured by opts.
//
// By default, logging is disabled. Use WithLogger to enable logging:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	err := tfsblame.Blame(ctx, files, out, tfsblame.WithLogger(logger))
func Blame(ctx context.Context, files []InputFile, out Output, opts ...Option) error {
	return NewCommand(opts...).Blame(ctx, files, out)
}
