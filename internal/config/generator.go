package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/stylarch/pkg/gradio"
)

var gradioEnv = &gradio.Env{
	BaseURL:     "STYLARCH_GENERATOR_BASE_URL",
	PredictPath: "STYLARCH_GENERATOR_PREDICT_PATH",
	Timeout:     "STYLARCH_GENERATOR_TIMEOUT",
	Token:       "STYLARCH_GENERATOR_TOKEN",
	Rate:        "STYLARCH_GENERATOR_RATE",
	Burst:       "STYLARCH_GENERATOR_BURST",
	MaxFileSize: "STYLARCH_GENERATOR_MAX_FILE_SIZE",
}

const envGeneratorMaxConcurrency = "STYLARCH_GENERATOR_MAX_CONCURRENCY"

// GeneratorConfig holds the image generation backend settings.
type GeneratorConfig struct {
	Gradio         gradio.Config `toml:"gradio"`
	MaxConcurrency int           `toml:"max_concurrency"`
}

// Finalize applies defaults, environment overrides, and validation
// for the generator config and its nested Gradio config.
func (c *GeneratorConfig) Finalize() error {
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = 3
	}
	if v := os.Getenv(envGeneratorMaxConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envGeneratorMaxConcurrency, err)
		}
		c.MaxConcurrency = n
	}
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be positive")
	}
	if err := c.Gradio.Finalize(gradioEnv); err != nil {
		return fmt.Errorf("gradio: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *GeneratorConfig) Merge(overlay *GeneratorConfig) {
	if overlay.MaxConcurrency != 0 {
		c.MaxConcurrency = overlay.MaxConcurrency
	}
	c.Gradio.Merge(&overlay.Gradio)
}
