package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	envLoggingLevel  = "STYLARCH_LOG_LEVEL"
	envLoggingFormat = "STYLARCH_LOG_FORMAT"
)

// LoggingConfig selects the slog handler the service logs through.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LoggingConfig) Finalize() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if v := os.Getenv(envLoggingLevel); v != "" {
		c.Level = v
	}
	if v := os.Getenv(envLoggingFormat); v != "" {
		c.Format = v
	}
	c.Format = strings.ToLower(c.Format)

	if _, err := c.level(); err != nil {
		return err
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format %q: want text or json", c.Format)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *LoggingConfig) Merge(overlay *LoggingConfig) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

// Handler returns a slog handler writing to w at the configured level.
func (c *LoggingConfig) Handler(w io.Writer) slog.Handler {
	level, _ := c.level()
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (c *LoggingConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	return level, nil
}
