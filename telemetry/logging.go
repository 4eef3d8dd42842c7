package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
)

// ConfigureLogger builds the application-wide structured logger emitting JSON
// records on stdout. The provided tags are attached to every record. A logger
// is always returned; the error only reports an unparsable level, in which
// case the logger falls back to info.
func ConfigureLogger(_ context.Context, tags map[string]string, level string) (*slog.Logger, error) {
	parsedLevel, err := parseLevel(level)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parsedLevel})

	attrs := make([]any, 0, len(tags))
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		attrs = append(attrs, slog.String(key, tags[key]))
	}

	logger := slog.New(handler).With(attrs...)
	slog.SetDefault(logger)
	return logger, err
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
