package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envWebBasePath     = "STYLARCH_WEB_BASE_PATH"
	envWebShareBaseURL = "STYLARCH_WEB_SHARE_BASE_URL"
)

// WebConfig holds settings for the server-rendered web app.
type WebConfig struct {
	BasePath     string `toml:"base_path"`
	ShareBaseURL string `toml:"share_base_url"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WebConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.ShareBaseURL == "" {
		c.ShareBaseURL = "https://stylarch.app"
	}
	if v := os.Getenv(envWebBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(envWebShareBaseURL); v != "" {
		c.ShareBaseURL = v
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /")
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.BasePath == "" || strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("base_path must be a single-level path such as /app")
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.ShareBaseURL != "" {
		c.ShareBaseURL = overlay.ShareBaseURL
	}
}
