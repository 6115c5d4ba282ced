// Package log builds [log/slog] handlers from string configuration, as
// supplied by CLI flags or config files.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	// ErrUnknownFormat indicates an unrecognized log format name.
	ErrUnknownFormat = errors.New("unknown log format")

	// ErrUnknownLevel indicates an unrecognized log level name.
	ErrUnknownLevel = errors.New("unknown log level")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w from
// string level and format names.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, opts), nil
	case TextFormat, LogfmtFormat, "":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
	}
}

// ParseLevel parses a log level name into a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}
