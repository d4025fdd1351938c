package middleware

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds the cross-origin policy for the JSON API.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv names the environment variables that override each field. List
// variables are comma-separated. Empty names are skipped.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge overwrites fields from overlay. Booleans always apply; lists and
// MaxAge apply only when set.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	for dst, src := range map[*[]string][]string{
		&c.Origins:        overlay.Origins,
		&c.AllowedMethods: overlay.AllowedMethods,
		&c.AllowedHeaders: overlay.AllowedHeaders,
	} {
		if src != nil {
			*dst = src
		}
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

func (c *CORSConfig) loadDefaults() {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}
}

func (c *CORSConfig) loadEnv(env *CORSEnv) error {
	for name, dst := range map[string]*bool{
		env.Enabled:          &c.Enabled,
		env.AllowCredentials: &c.AllowCredentials,
	} {
		if v := lookup(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = b
		}
	}
	for name, dst := range map[string]*[]string{
		env.Origins:        &c.Origins,
		env.AllowedMethods: &c.AllowedMethods,
		env.AllowedHeaders: &c.AllowedHeaders,
	} {
		if list := splitList(lookup(name)); list != nil {
			*dst = list
		}
	}
	if v := lookup(env.MaxAge); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env.MaxAge, err)
		}
		c.MaxAge = n
	}
	return nil
}

func (c *CORSConfig) validate() error {
	if c.AllowCredentials && slices.Contains(c.Origins, "*") {
		return errors.New("allow_credentials cannot be combined with a * origin")
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

// splitList splits a comma-separated value, dropping blank items. It returns
// nil when nothing remains.
func splitList(v string) []string {
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
