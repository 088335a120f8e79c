package logger

import "log/slog"

// ContextKeyRequestID stores the per-request correlation id
const ContextKeyRequestID = "request_id"

// LogFormatJSON selects the JSON handler; any other format is text
const LogFormatJSON = "json"

// EnvironmentProduction disables source locations in log records
const EnvironmentProduction = "prod"

// Attribute keys stamped on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// levels maps accepted LOG_LEVEL spellings; anything else is info
var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}
