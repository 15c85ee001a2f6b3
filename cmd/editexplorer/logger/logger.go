// Package logger is a thin file-backed slog wrapper for the explorer. The
// TUI owns the terminal, so diagnostics go to a log file instead of stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options configures logger initialization.
type Options struct {
	Enabled bool
	Level   slog.Level
	Path    string // defaults to editexplorer.log in the working directory
}

var (
	logger  *slog.Logger
	logFile *os.File
)

// Init sets up the package logger. With Enabled false all logging calls are
// cheap no-ops.
func Init(opts Options) error {
	if !opts.Enabled {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	path := opts.Path
	if path == "" {
		path = "editexplorer.log"
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logger: open %s: %w", path, err)
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

func get() *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
