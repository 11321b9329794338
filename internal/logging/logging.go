// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"

	"remindme/internal/fsutil"
)

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch name {
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

// Setup installs a text handler writing to w at level as the default logger
// and returns it.
func Setup(level string, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

// WithModule returns the default logger tagged with module.
func WithModule(module string) *slog.Logger {
	return slog.With("module", module)
}

// Output opens the log destination for the TUI. The terminal is owned by the
// UI, so an empty path discards logs. The returned close func is never nil.
func Output(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := fsutil.OpenAppend(path)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}
