package openapi

import (
	"cmp"
	"os"
)

const (
	defaultTitle       = "STYLARCH API"
	defaultDescription = "Floor plan prompt assembly, generation, interpretation, and project management."
)

// Config is the info block of the generated document.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv names the variables that override Config.
type ConfigEnv struct {
	Title       string
	Description string
}

// Finalize resolves each field as env, then file, then default. It never fails.
func (c *Config) Finalize(env *ConfigEnv) error {
	if env == nil {
		env = &ConfigEnv{}
	}
	c.Title = cmp.Or(getenv(env.Title), c.Title, defaultTitle)
	c.Description = cmp.Or(getenv(env.Description), c.Description, defaultDescription)
	return nil
}

func (c *Config) Merge(overlay *Config) {
	c.Title = cmp.Or(overlay.Title, c.Title)
	c.Description = cmp.Or(overlay.Description, c.Description)
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
