package executable

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wagiedev/tfsblame-go/internal/errors"
)

const (
	// PathEnvVar names the environment variable holding the engine path.
	PathEnvVar = "TFS_ANNOTATE_PATH"

	// BaseName is the name the engine is shipped under.
	BaseName = "SonarTfsAnnotate"
)

// Config holds configuration for engine discovery.
type Config struct {
	// Path is an explicit engine path that skips every other lookup.
	Path string

	// Getenv reads environment variables. If nil, os.Getenv is used.
	Getenv func(string) string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the annotate engine.
type Discoverer interface {
	// Discover returns the path of the engine binary or an
	// ExecutableNotFoundError listing the places that were searched.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg    *Config
	log    *slog.Logger
	getenv func(string) string
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new engine discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	getenv := cfg.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	return &discoverer{
		cfg:    cfg,
		log:    log,
		getenv: getenv,
	}
}

// Discover locates the annotate engine.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.log.Debug("Discovering TFS annotate executable")

	// If explicit path provided, use it and only it
	if d.cfg.Path != "" {
		if isFile(d.cfg.Path) {
			d.log.Debug("Using explicit executable path", "path", d.cfg.Path)

			return d.cfg.Path, nil
		}

		d.log.Debug("Explicit executable path not found", "path", d.cfg.Path)

		return "", &errors.ExecutableNotFoundError{SearchedPaths: []string{d.cfg.Path}}
	}

	searchedPaths := make([]string, 0, 6)

	if envPath := d.getenv(PathEnvVar); envPath != "" {
		searchedPaths = append(searchedPaths, envPath)

		if isFile(envPath) {
			d.log.Debug("Found executable via environment", "env", PathEnvVar, "path", envPath)

			return envPath, nil
		}
	}

	for _, name := range []string{BaseName, BaseName + ".exe"} {
		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found executable in PATH", "path", path)

			return path, nil
		}
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, path := range commonPaths() {
		searchedPaths = append(searchedPaths, path)

		if isFile(path) {
			d.log.Debug("Found executable at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("TFS annotate executable not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.ExecutableNotFoundError{SearchedPaths: searchedPaths}
}

// commonPaths lists the install locations checked after PATH.
func commonPaths() []string {
	paths := []string{
		filepath.Join("/usr/local/bin", BaseName),
		filepath.Join("/opt/sonar-tfs", BaseName+".exe"),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".sonar", "tfs", BaseName+".exe"))
	}

	return paths
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
