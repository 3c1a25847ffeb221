package logging

import (
	"log/slog"
	"os"
	"strings"
)

const LogLevelKey = "LOG_LEVEL"

// Default is the process-wide logger: JSON on stdout at the level named by
// the LOG_LEVEL environment variable (info when unset or unrecognized).
var Default = NewLogger(os.Getenv(LogLevelKey))

func NewLogger(levelName string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(levelName),
	}))
}

func ParseLevel(levelName string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelName)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
