package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	tfsblame "github.com/wagiedev/tfsblame-go"
)

type rootFlags struct {
	exe         string
	cwd         string
	sessions    int
	redisAddr   string
	redisPrefix string
	timezone    string
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tfsblame [flags] FILE...",
		Short:         "Print TFS blame information for files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&flags.exe, "exe", "", "path to SonarTfsAnnotate (default: $TFS_ANNOTATE_PATH or PATH)")
	f.StringVar(&flags.cwd, "cwd", "", "working directory of the annotate engine")
	f.IntVar(&flags.sessions, "sessions", 1, "number of annotate engines run in parallel")
	f.StringVar(&flags.redisAddr, "redis", "", "store results in the Redis server at this address instead of printing them")
	f.StringVar(&flags.redisPrefix, "redis-prefix", "tfsblame", "key prefix of results stored in Redis")
	f.StringVar(&flags.timezone, "tz", "", "IANA time zone annotation dates are interpreted in (default: local)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log protocol traffic to stderr")

	return cmd
}

func run(ctx context.Context, flags *rootFlags, args []string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []tfsblame.Option{
		tfsblame.WithLogger(logger),
		tfsblame.WithExecutablePath(flags.exe),
		tfsblame.WithCwd(flags.cwd),
		tfsblame.WithSessions(flags.sessions),
	}

	if flags.timezone != "" {
		loc, err := time.LoadLocation(flags.timezone)
		if err != nil {
			return fmt.Errorf("load time zone: %w", err)
		}

		opts = append(opts, tfsblame.WithDateLocation(loc))
	}

	files := make([]tfsblame.InputFile, 0, len(args))

	for _, arg := range args {
		file, err := tfsblame.LoadFile(arg)
		if err != nil {
			return err
		}

		files = append(files, file)
	}

	out, closeOut, err := newOutput(flags, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	return tfsblame.BlameConcurrent(ctx, files, out, opts...)
}

// newOutput returns the Redis store when an address is configured, and a
// JSON printer otherwise.
func newOutput(flags *rootFlags, stdout io.Writer) (tfsblame.Output, func(), error) {
	if flags.redisAddr == "" {
		return newJSONOutput(stdout), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: flags.redisAddr})

	return tfsblame.NewRedisStore(client, flags.redisPrefix), func() { _ = client.Close() }, nil
}

// newJSONOutput writes every result as one JSON object per line. Results of
// concurrent sessions are serialized.
func newJSONOutput(w io.Writer) tfsblame.Output {
	var mu sync.Mutex

	enc := json.NewEncoder(w)

	return tfsblame.OutputFunc(func(_ context.Context, file tfsblame.InputFile, result *tfsblame.Result) error {
		mu.Lock()
		defer mu.Unlock()

		return enc.Encode(struct {
			Path         string          `json:"path"`
			RelativePath string          `json:"relative_path"`
			Lines        []tfsblame.Line `json:"lines"`
		}{
			Path:         result.Path,
			RelativePath: file.RelativePath(),
			Lines:        result.Lines,
		})
	})
}
