// Package observability carries the service's logging and tracing setup,
// adapted from the shared logging/tracing helpers used across the rest of
// the platform's services.
package observability

import (
	"log/slog"
	"os"
)

// InitLogger sets the default slog logger to write structured JSON to
// stdout, matching what every other service in the platform emits so log
// aggregation doesn't need per-service parsing rules.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
