package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "STYLARCH_SERVER_HOST"
	EnvServerPort              = "STYLARCH_SERVER_PORT"
	EnvServerReadTimeout       = "STYLARCH_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "STYLARCH_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "STYLARCH_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "STYLARCH_SERVER_IDLE_TIMEOUT"
	EnvServerShutdownTimeout   = "STYLARCH_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener parameters. Timeouts are Go duration
// strings. WriteTimeout must cover a full multi-floor generation, which
// holds the response open while images are produced.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReadTimeoutDuration returns ReadTimeout as a time.Duration.
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return mustDuration(c.ReadTimeout)
}

// ReadHeaderTimeoutDuration returns ReadHeaderTimeout as a time.Duration.
func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return mustDuration(c.ReadHeaderTimeout)
}

// WriteTimeoutDuration returns WriteTimeout as a time.Duration.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return mustDuration(c.WriteTimeout)
}

// IdleTimeoutDuration returns IdleTimeout as a time.Duration.
func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	return mustDuration(c.IdleTimeout)
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return mustDuration(c.ShutdownTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for dst, src := range c.durations(overlay) {
		if src != "" {
			*dst = src
		}
	}
}

// durations pairs each duration field of c with the same field of other.
func (c *ServerConfig) durations(other *ServerConfig) map[*string]string {
	return map[*string]string{
		&c.ReadTimeout:       other.ReadTimeout,
		&c.ReadHeaderTimeout: other.ReadHeaderTimeout,
		&c.WriteTimeout:      other.WriteTimeout,
		&c.IdleTimeout:       other.IdleTimeout,
		&c.ShutdownTimeout:   other.ShutdownTimeout,
	}
}

func (c *ServerConfig) loadDefaults() {
	defaults := ServerConfig{
		Host:              "0.0.0.0",
		Port:              8080,
		ReadTimeout:       "1m",
		ReadHeaderTimeout: "10s",
		WriteTimeout:      "5m",
		IdleTimeout:       "2m",
		ShutdownTimeout:   "30s",
	}
	if c.Host == "" {
		c.Host = defaults.Host
	}
	if c.Port == 0 {
		c.Port = defaults.Port
	}
	for dst, def := range c.durations(&defaults) {
		if *dst == "" {
			*dst = def
		}
	}
}

func (c *ServerConfig) loadEnv() error {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvServerPort, err)
		}
		c.Port = port
	}
	for name, dst := range map[string]*string{
		EnvServerReadTimeout:       &c.ReadTimeout,
		EnvServerReadHeaderTimeout: &c.ReadHeaderTimeout,
		EnvServerWriteTimeout:      &c.WriteTimeout,
		EnvServerIdleTimeout:       &c.IdleTimeout,
		EnvServerShutdownTimeout:   &c.ShutdownTimeout,
	} {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for name, v := range map[string]string{
		"read_timeout":        c.ReadTimeout,
		"read_header_timeout": c.ReadHeaderTimeout,
		"write_timeout":       c.WriteTimeout,
		"idle_timeout":        c.IdleTimeout,
		"shutdown_timeout":    c.ShutdownTimeout,
	} {
		if d, err := time.ParseDuration(v); err != nil || d <= 0 {
			return fmt.Errorf("invalid %s: %q", name, v)
		}
	}
	return nil
}

// mustDuration parses a duration already checked by validate.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
