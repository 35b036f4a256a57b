package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	}

	slog.SetDefault(slog.New(handler))
}

// WithUser returns a logger with user_id field.
func WithUser(userID string) *slog.Logger {
	return slog.Default().With("user_id", userID)
}

// WithFeedback returns a logger with feedback_id field.
func WithFeedback(feedbackID string) *slog.Logger {
	return slog.Default().With("feedback_id", feedbackID)
}

// WithError returns a logger with error field.
func WithError(err error) *slog.Logger {
	return slog.Default().With("error", err)
}
