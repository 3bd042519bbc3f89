// Package logger provides the structured logging engine.
// Uses log/slog writing to a single sink, normally stderr. Stdout is reserved
// for program output and never receives log lines.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with command-specific utilities.
type Logger struct {
	*slog.Logger
}

// ParseLevel maps a config level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch level {
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

// New builds a Logger writing to w. A nil w means os.Stderr.
// debug forces the debug level and adds source locations.
func New(w io.Writer, level, format string, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl := ParseLevel(level)
	if debug {
		lvl = slog.LevelDebug
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: lvl, AddSource: debug}
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Init builds a Logger writing to w and installs it as the slog default.
func Init(w io.Writer, level, format string, debug bool) *Logger {
	l := New(w, level, format, debug)
	slog.SetDefault(l.Logger)
	return l
}
