// Package pagination carries page requests from query strings to repositories
// and page results back to JSON and templates.
package pagination

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPageSize = 20
	defaultMaxSize  = 100
)

// Config bounds the page sizes clients may request.
type Config struct {
	DefaultPageSize int `toml:"default_page_size" json:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size" json:"max_page_size"`
}

// ConfigEnv names the variables that override Config.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Finalize fills unset sizes, applies env overrides, and checks that the
// default fits under the maximum.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = defaultMaxSize
	}
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}

	switch {
	case c.DefaultPageSize < 1 || c.MaxPageSize < 1:
		return errors.New("page sizes must be positive")
	case c.DefaultPageSize > c.MaxPageSize:
		return fmt.Errorf("default_page_size %d exceeds max_page_size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

// Merge copies the sizes overlay sets.
func (c *Config) Merge(overlay *Config) {
	c.DefaultPageSize = cmp.Or(overlay.DefaultPageSize, c.DefaultPageSize)
	c.MaxPageSize = cmp.Or(overlay.MaxPageSize, c.MaxPageSize)
}

func (c *Config) loadEnv(env *ConfigEnv) error {
	for name, dst := range map[string]*int{
		env.DefaultPageSize: &c.DefaultPageSize,
		env.MaxPageSize:     &c.MaxPageSize,
	} {
		v := ""
		if name != "" {
			v = os.Getenv(name)
		}
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

