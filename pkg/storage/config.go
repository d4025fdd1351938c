package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// MaxListCap bounds a single listing page regardless of configuration or request.
const MaxListCap int32 = 500

// Config selects the Azure Blob Storage account and container saved designs
// live in. ConnectionString wins over AccountURL; AccountURL authenticates
// with the default Azure credential chain.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	AccountURL       string `toml:"account_url"`
	MaxListSize      int32  `toml:"max_list_size"`
	MaxRetries       int32  `toml:"max_retries"`
}

// Env names the environment variables that override each field.
// Empty names are skipped.
type Env struct {
	ContainerName    string
	ConnectionString string
	AccountURL       string
	MaxListSize      string
	MaxRetries       string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	c.MaxListSize = min(c.MaxListSize, MaxListCap)
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	for dst, src := range map[*string]string{
		&c.ContainerName:    overlay.ContainerName,
		&c.ConnectionString: overlay.ConnectionString,
		&c.AccountURL:       overlay.AccountURL,
	} {
		if src != "" {
			*dst = src
		}
	}
	if overlay.MaxListSize != 0 {
		c.MaxListSize = overlay.MaxListSize
	}
	if overlay.MaxRetries != 0 {
		c.MaxRetries = overlay.MaxRetries
	}
}

// ParseMaxResults parses a max_results query value. Empty means def; larger
// values are clamped to MaxListCap.
func ParseMaxResults(s string, def int32) (int32, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: max_results must be a positive integer", ErrInvalidListing)
	}
	return min(int32(n), MaxListCap), nil
}

func (c *Config) loadDefaults() {
	if c.ContainerName == "" {
		c.ContainerName = "stylarch"
	}
	if c.MaxListSize == 0 {
		c.MaxListSize = 50
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
}

func (c *Config) loadEnv(env *Env) error {
	for name, dst := range map[string]*string{
		env.ContainerName:    &c.ContainerName,
		env.ConnectionString: &c.ConnectionString,
		env.AccountURL:       &c.AccountURL,
	} {
		if v := lookup(name); v != "" {
			*dst = v
		}
	}
	for name, dst := range map[string]*int32{
		env.MaxListSize: &c.MaxListSize,
		env.MaxRetries:  &c.MaxRetries,
	} {
		v := lookup(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = int32(n)
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
	switch {
	case c.ContainerName == "":
		return errors.New("container_name required")
	case c.ConnectionString == "" && c.AccountURL == "":
		return errors.New("connection_string or account_url required")
	case c.MaxListSize < 1:
		return fmt.Errorf("max_list_size must be positive, got %d", c.MaxListSize)
	case c.MaxRetries < 0:
		return fmt.Errorf("max_retries must not be negative, got %d", c.MaxRetries)
	}
	return nil
}
