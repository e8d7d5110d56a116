// Package logging sets up the structured logger. A TUI owns the terminal, so
// records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options configures the logger
type Options struct {
	// File is the log file path. Empty disables logging.
	File string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// Logger wraps a slog.Logger with its level and the file it writes to
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// Setup opens the log file, creating parent directories, and returns a JSON
// logger writing to it
func Setup(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	if opts.File == "" {
		return &Logger{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			level:  levelVar,
		}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: levelVar})
	return &Logger{
		Logger: slog.New(handler),
		level:  levelVar,
		file:   f,
	}, nil
}

// SetLevel changes the minimum level at runtime
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the current minimum level
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}
