// Package logging builds the application logger and the PATH change log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the application log
type Config struct {
	Level  string
	Format string
	// FilePath enables a rotated log file; empty means Stderr only
	FilePath string
	// Quiet drops the Stderr copy, which would otherwise draw over the TUI
	Quiet bool
}

// Manager owns the log writer
type Manager struct {
	closer io.Closer
}

// NewManager creates a Manager and returns it along with a ready-to-use logger.
func NewManager(cfg Config) (*Manager, *slog.Logger) {
	writer, closer := buildWriter(cfg)
	handler := buildHandler(writer, parseLevel(cfg.Level), cfg.Format)
	return &Manager{closer: closer}, slog.New(handler)
}

// Close releases the log file, if any
func (m *Manager) Close() error {
	if m.closer == nil {
		return nil
	}
	err := m.closer.Close()
	m.closer = nil
	return err
}

// parseLevel converts a string to slog.Level, defaulting to Info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRotator(file string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     90,
	}
}

func buildWriter(cfg Config) (io.Writer, io.Closer) {
	switch {
	case cfg.FilePath == "" && cfg.Quiet:
		return io.Discard, nil
	case cfg.FilePath == "":
		return os.Stderr, nil
	}
	lj := newRotator(cfg.FilePath)
	if cfg.Quiet {
		return lj, lj
	}
	return io.MultiWriter(os.Stderr, lj), lj
}

func buildHandler(w io.Writer, level slog.Leveler, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
