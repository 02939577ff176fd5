// Package logging configures the process-wide structured logger.
//
// Logs are JSON lines on stderr carrying the module name and build version.
// Debug level adds source locations.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewStructuredLogger returns a JSON logger writing to w.
func NewStructuredLogger(w io.Writer, module, version string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a stderr JSON logger as the slog default.
func SetDefaultStructuredLogger(module, version string, level slog.Level) {
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level))
}
