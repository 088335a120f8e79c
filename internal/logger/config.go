package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config selects the handler and the identity attributes of the process logger
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// ParseLevel resolves a LOG_LEVEL value, case-insensitively
func ParseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return slog.LevelInfo
}

// LogLevel is ParseLevel applied to c.Level
func (c Config) LogLevel() slog.Level {
	return ParseLevel(c.Level)
}

// IsJSON reports whether records are written as JSON lines
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// Handler builds the slog handler for w with the identity attributes attached
func (c Config) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     c.LogLevel(),
		AddSource: c.AddSource,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if c.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	}

	return h.WithAttrs([]slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	})
}
