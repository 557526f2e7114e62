// Package logger configures the process-wide slog logger
package logger

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-skilltrees/internal/config"
)

// Setup configures the global slog logger based on environment. Production
// writes JSON, everything else writes text.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("service", "skilltrees")
	slog.SetDefault(logger)

	return logger
}

// WithSave adds the save id to logger context
func WithSave(logger *slog.Logger, saveID string) *slog.Logger {
	return logger.With("save_id", saveID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
