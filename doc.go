// Package tfsblame drives the TFS annotate engine to compute per-line blame
// information (revision, author and date) for files under Team Foundation
// version control.
//
// The engine is a long-lived child process. For every file the driver writes
// the file's absolute path to the engine's standard input and reads back the
// echoed path, a line count and one annotation per line. Files are processed
// strictly one at a time, in the order given.
//
// # Basic Usage
//
//	files := []tfsblame.InputFile{
//	    &tfsblame.File{Path: "/src/project/a.cs", LineCount: 120},
//	}
//
//	store := tfsblame.NewMemoryStore()
//	err := tfsblame.Blame(ctx, files, store,
//	    tfsblame.WithExecutablePath(`C:\tools\SonarTfsAnnotate.exe`),
//	)
//
// Results can also be consumed directly with an OutputFunc:
//
//	out := tfsblame.OutputFunc(func(ctx context.Context, f tfsblame.InputFile, r *tfsblame.Result) error {
//	    fmt.Println(f.AbsolutePath(), len(r.Lines))
//	    return nil
//	})
//
// # Concurrent Sessions
//
// A session owns a single engine process. BlameConcurrent splits the files
// into WithSessions(n) batches and runs one independent session per batch;
// the first failure cancels the others.
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	err := tfsblame.Blame(ctx, files, store, tfsblame.WithLogger(logger))
//
// # Error Handling
//
// A session fails as a whole. The driver provides typed errors for the
// different failures:
//
//	err := tfsblame.Blame(ctx, files, store)
//	if noBlame, ok := errors.AsType[*tfsblame.NoBlameInfoError](err); ok {
//	    log.Fatalf("%s is not committed (line %d)", noBlame.Path, noBlame.Line)
//	}
//	if procErr, ok := errors.AsType[*tfsblame.ProcessError](err); ok {
//	    log.Fatalf("engine failed with exit code %d: %s", procErr.ExitCode, procErr.Stderr)
//	}
//
// Unparseable dates and malformed annotation lines never fail a session; they
// are logged and the affected line is reported without a date or skipped.
//
// # Requirements
//
// The engine binary must already be present on disk. It is located through
// WithExecutablePath, the TFS_ANNOTATE_PATH environment variable or PATH.
package tfsblame
