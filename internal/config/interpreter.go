package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Interpreter backends.
const (
	BackendStatic = "static"
	BackendGenAI  = "genai"
)

var interpreterEnv = struct {
	Backend         string
	Delay           string
	APIKey          string
	Model           string
	Temperature     string
	MaxOutputTokens string
}{
	Backend:         "STYLARCH_INTERPRETER_BACKEND",
	Delay:           "STYLARCH_INTERPRETER_DELAY",
	APIKey:          "STYLARCH_INTERPRETER_API_KEY",
	Model:           "STYLARCH_INTERPRETER_MODEL",
	Temperature:     "STYLARCH_INTERPRETER_TEMPERATURE",
	MaxOutputTokens: "STYLARCH_INTERPRETER_MAX_OUTPUT_TOKENS",
}

// InterpreterConfig selects and configures the floor plan analysis backend.
// The static backend returns a canned report after Delay; genai calls a Gemini model.
type InterpreterConfig struct {
	Backend         string  `toml:"backend"`
	Delay           string  `toml:"delay"`
	APIKey          string  `toml:"api_key"`
	Model           string  `toml:"model"`
	Temperature     float32 `toml:"temperature"`
	MaxOutputTokens int32   `toml:"max_output_tokens"`
}

// DelayDuration returns Delay as a time.Duration.
func (c *InterpreterConfig) DelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.Delay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *InterpreterConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *InterpreterConfig) Merge(overlay *InterpreterConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Delay != "" {
		c.Delay = overlay.Delay
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxOutputTokens != 0 {
		c.MaxOutputTokens = overlay.MaxOutputTokens
	}
}

func (c *InterpreterConfig) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendStatic
	}
	if c.Delay == "" {
		c.Delay = "3s"
	}
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 2048
	}
}

func (c *InterpreterConfig) loadEnv() error {
	if v := os.Getenv(interpreterEnv.Backend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(interpreterEnv.Delay); v != "" {
		c.Delay = v
	}
	if v := os.Getenv(interpreterEnv.APIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(interpreterEnv.Model); v != "" {
		c.Model = v
	}
	if v := os.Getenv(interpreterEnv.Temperature); v != "" {
		t, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", interpreterEnv.Temperature, err)
		}
		c.Temperature = float32(t)
	}
	if v := os.Getenv(interpreterEnv.MaxOutputTokens); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", interpreterEnv.MaxOutputTokens, err)
		}
		c.MaxOutputTokens = int32(n)
	}
	return nil
}

func (c *InterpreterConfig) validate() error {
	if _, err := time.ParseDuration(c.Delay); err != nil {
		return fmt.Errorf("invalid delay: %w", err)
	}
	switch c.Backend {
	case BackendStatic:
	case BackendGenAI:
		if c.APIKey == "" {
			return fmt.Errorf("api_key required for %s backend", BackendGenAI)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.MaxOutputTokens < 1 {
		return fmt.Errorf("max_output_tokens must be positive")
	}
	return nil
}
