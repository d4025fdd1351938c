package database

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds PostgreSQL connection parameters. When DSN is set it is used
// as-is and the discrete connection fields are ignored.
type Config struct {
	DSN             string `toml:"dsn"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env names the environment variables that override each field.
// Empty names are skipped.
type Env struct {
	DSN             string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

// ConnMaxLifetimeDuration returns ConnMaxLifetime as a time.Duration.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration returns ConnTimeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// URL returns the connection as a postgres:// URL. Both the pgx driver and
// golang-migrate accept this form.
func (c *Config) URL() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	for dst, src := range c.strings(overlay) {
		if src != "" {
			*dst = src
		}
	}
	for dst, src := range c.ints(overlay) {
		if src != 0 {
			*dst = src
		}
	}
}

func (c *Config) strings(other *Config) map[*string]string {
	return map[*string]string{
		&c.DSN:             other.DSN,
		&c.Host:            other.Host,
		&c.Name:            other.Name,
		&c.User:            other.User,
		&c.Password:        other.Password,
		&c.SSLMode:         other.SSLMode,
		&c.ConnMaxLifetime: other.ConnMaxLifetime,
		&c.ConnTimeout:     other.ConnTimeout,
	}
}

func (c *Config) ints(other *Config) map[*int]int {
	return map[*int]int{
		&c.Port:         other.Port,
		&c.MaxOpenConns: other.MaxOpenConns,
		&c.MaxIdleConns: other.MaxIdleConns,
	}
}

func (c *Config) loadDefaults() {
	defaults := &Config{
		Host:            "localhost",
		Port:            5432,
		Name:            "stylarch",
		User:            "stylarch",
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: "15m",
		ConnTimeout:     "5s",
	}
	for dst, def := range c.strings(defaults) {
		if *dst == "" {
			*dst = def
		}
	}
	for dst, def := range c.ints(defaults) {
		if *dst == 0 {
			*dst = def
		}
	}
}

func (c *Config) loadEnv(env *Env) error {
	for name, dst := range map[string]*string{
		env.DSN:             &c.DSN,
		env.Host:            &c.Host,
		env.Name:            &c.Name,
		env.User:            &c.User,
		env.Password:        &c.Password,
		env.SSLMode:         &c.SSLMode,
		env.ConnMaxLifetime: &c.ConnMaxLifetime,
		env.ConnTimeout:     &c.ConnTimeout,
	} {
		if v := lookup(name); v != "" {
			*dst = v
		}
	}
	for name, dst := range map[string]*int{
		env.Port:         &c.Port,
		env.MaxOpenConns: &c.MaxOpenConns,
		env.MaxIdleConns: &c.MaxIdleConns,
	} {
		v := lookup(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func (c *Config) validate() error {
	if c.DSN == "" {
		if c.Name == "" {
			return fmt.Errorf("name required")
		}
		if c.User == "" {
			return fmt.Errorf("user required")
		}
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns (%d) exceeds max_open_conns (%d)", c.MaxIdleConns, c.MaxOpenConns)
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if d, err := time.ParseDuration(c.ConnTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid conn_timeout: %q", c.ConnTimeout)
	}
	return nil
}
