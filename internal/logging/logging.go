// Package logging configures the application-wide zerolog logger.
// Logs always go to a file so they never interfere with the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultPath returns <dataDir>/logs/tasklane.log
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "tasklane.log")
}

// New builds a logger writing JSON lines to path (append mode).
// An empty path discards all output.
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level, path string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer = io.Discard
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = file.Close() }
		writer = file
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// Init installs a file logger as the global zerolog logger.
// The returned func closes the log file.
func Init(level, path string) (func(), error) {
	l, closer, err := New(level, path)
	if err != nil {
		return closer, err
	}
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return closer, nil
}

// Component creates a new logger with a component identifier.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
