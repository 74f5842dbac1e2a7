// Package logging configures the process-wide slog logger. Diagnostics
// always go to stderr so they never interleave with the NDJSON event
// stream on stdout.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the default logger. With jsonFormat, stderr carries JSON
// records so diagnostics stay machine-parseable alongside piped event
// output; otherwise a text handler is used for human readability.
func Init(jsonFormat bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if jsonFormat {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a level name to slog.Level. Unknown names default to
// LevelInfo.
func ParseLevel(s string) slog.Level {
	if lvl, ok := levels[strings.ToLower(s)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
