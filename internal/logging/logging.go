// Package logging configures the process-wide slog default handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs a text handler writing to stdout, mirrored to path when it
// is non-empty. Unknown level strings fall back to INFO.
func Init(path, level string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler))
	return nil
}

// ParseLevel converts a config level string to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
