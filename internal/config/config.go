// Package config loads the service configuration from TOML files and
// STYLARCH_* environment variables.
package config

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/stylarch/pkg/database"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvStylarchEnv             = "STYLARCH_ENV"
	EnvStylarchShutdownTimeout = "STYLARCH_SHUTDOWN_TIMEOUT"
	EnvStylarchVersion         = "STYLARCH_VERSION"
)

// DatabaseEnv names the environment variables that override database settings.
var DatabaseEnv = &database.Env{
	DSN:             "STYLARCH_DB_DSN",
	Host:            "STYLARCH_DB_HOST",
	Port:            "STYLARCH_DB_PORT",
	Name:            "STYLARCH_DB_NAME",
	User:            "STYLARCH_DB_USER",
	Password:        "STYLARCH_DB_PASSWORD",
	SSLMode:         "STYLARCH_DB_SSL_MODE",
	MaxOpenConns:    "STYLARCH_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "STYLARCH_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "STYLARCH_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "STYLARCH_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "STYLARCH_STORAGE_CONTAINER_NAME",
	ConnectionString: "STYLARCH_STORAGE_CONNECTION_STRING",
	AccountURL:       "STYLARCH_STORAGE_ACCOUNT_URL",
	MaxListSize:      "STYLARCH_STORAGE_MAX_LIST_SIZE",
	MaxRetries:       "STYLARCH_STORAGE_MAX_RETRIES",
}

// Config is the root configuration for the STYLARCH service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	Storage         storage.Config    `toml:"storage"`
	API             APIConfig         `toml:"api"`
	Generator       GeneratorConfig   `toml:"generator"`
	Interpreter     InterpreterConfig `toml:"interpreter"`
	Web             WebConfig         `toml:"web"`
	Logging         LoggingConfig     `toml:"logging"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env is the deployment name from STYLARCH_ENV, "local" when unset.
func (c *Config) Env() string {
	return cmp.Or(os.Getenv(EnvStylarchEnv), "local")
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return mustDuration(c.ShutdownTimeout)
}

// Load builds the configuration in layers: built-in defaults, config.toml
// when present, config.<STYLARCH_ENV>.toml when present, then STYLARCH_*
// environment variables. Every section is validated before Load returns.
func Load() (*Config, error) {
	cfg := &Config{}

	for i, path := range layers() {
		layer, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if i == 0 {
			cfg = layer
			continue
		}
		cfg.Merge(layer)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Merge copies every field overlay sets, section by section.
func (c *Config) Merge(overlay *Config) {
	c.ShutdownTimeout = cmp.Or(overlay.ShutdownTimeout, c.ShutdownTimeout)
	c.Version = cmp.Or(overlay.Version, c.Version)

	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Generator.Merge(&overlay.Generator)
	c.Interpreter.Merge(&overlay.Interpreter)
	c.Web.Merge(&overlay.Web)
	c.Logging.Merge(&overlay.Logging)
}

// step finalizes one named section.
type step struct {
	name string
	run  func() error
}

func runSteps(steps []step) error {
	for _, s := range steps {
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func (c *Config) finalize() error {
	c.ShutdownTimeout = cmp.Or(os.Getenv(EnvStylarchShutdownTimeout), c.ShutdownTimeout, "30s")
	c.Version = cmp.Or(os.Getenv(EnvStylarchVersion), c.Version, "0.1.0")

	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	return runSteps([]step{
		{"server", c.Server.Finalize},
		{"database", func() error { return c.Database.Finalize(DatabaseEnv) }},
		{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
		{"api", c.API.Finalize},
		{"generator", c.Generator.Finalize},
		{"interpreter", c.Interpreter.Finalize},
		{"web", c.Web.Finalize},
		{"logging", c.Logging.Finalize},
	})
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &cfg, nil
}

// layers lists the config files that exist, base first.
func layers() []string {
	candidates := []string{BaseConfigFile}
	if env := os.Getenv(EnvStylarchEnv); env != "" {
		candidates = append(candidates, fmt.Sprintf(OverlayConfigPattern, env))
	}

	var found []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			found = append(found, path)
		}
	}
	return found
}
