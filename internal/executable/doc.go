// Package executable locates the TFS annotate engine and prepares the
// environment it runs in.
//
// The engine binary is expected to be materialized on disk already; this
// package only finds it:
//
//	discoverer := executable.NewDiscoverer(&executable.Config{
//	    Path:   "",             // Optional explicit path
//	    Logger: slog.Default(),
//	})
//	path, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.Path (if provided)
//  2. The TFS_ANNOTATE_PATH environment variable
//  3. System PATH (SonarTfsAnnotate, SonarTfsAnnotate.exe)
//  4. Common installation directories
package executable
