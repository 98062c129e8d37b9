package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
)

// Level represents log level
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format represents log output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger configuration
type Config struct {
	Level  Level
	Format Format
}

// New creates a structured logger writing to w.
// The TUI owns the terminal, so w is normally a log file and colors are disabled.
func New(cfg Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	handler := createHandler(cfg.Format, level, w)
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenFile opens (or creates) the log file for appending.
// An empty path resolves to $XDG_STATE_HOME/ymdb/ymdb.log.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		if path, err = xdg.StateFile("ymdb/ymdb.log"); err != nil {
			return nil, fmt.Errorf("failed to resolve log file path: %w", err)
		}
	}

	// #nosec G304 -- path comes from configuration or the XDG state directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// parseLevel converts string log level to slog.Level
func parseLevel(level Level) slog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// createHandler creates appropriate handler based on format
func createHandler(format Format, level slog.Level, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		AddSource:  opts.AddSource,
		NoColor:    true,
	})
}
