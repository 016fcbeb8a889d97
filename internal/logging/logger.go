package logging

import (
	"log/slog"
	"os"
)

// New returns the structured logger shared across the service.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
