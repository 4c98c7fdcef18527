package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config controls logger construction.
type Config struct {
	// Output receives JSON records. Defaults to os.Stdout.
	Output io.Writer

	// Service is attached to every record as the "service" attribute when set.
	Service string

	Sentry SentryConfig

	Level slog.Level
}

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string

	// MinLevel selects which records are stored as Sentry logs.
	// slog.LevelError keeps only errors; anything lower keeps warnings too.
	MinLevel slog.Level
}

// ParseLevel maps a textual level ("debug", "info", "warn", "error") to slog.Level.
// Unknown or empty values resolve to slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
