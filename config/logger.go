package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog.Logger. Production (GO_ENV) gets a
// JSON handler for log shipping, everything else a text handler. LOG_LEVEL
// accepts debug, info, warn, error and defaults to info.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel()}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "fitimprove")
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
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
