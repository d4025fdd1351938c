package gradio

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/stylarch/pkg/formatting"
)

const defaultMaxFileSize = 20 * 1024 * 1024

// Config holds connection settings for a hosted Gradio app.
type Config struct {
	BaseURL     string  `toml:"base_url"`
	PredictPath string  `toml:"predict_path"`
	Timeout     string  `toml:"timeout"`
	Token       string  `toml:"token"`
	Rate        float64 `toml:"rate"`
	Burst       int     `toml:"burst"`
	MaxFileSize string  `toml:"max_file_size"`
}

// Env names the variables that override Config.
type Env struct {
	BaseURL     string
	PredictPath string
	Timeout     string
	Token       string
	Rate        string
	Burst       string
	MaxFileSize string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxFileSizeBytes caps file outputs fetched from the app. An unparseable
// size yields 20MB.
func (c *Config) MaxFileSizeBytes() int64 {
	if n, err := formatting.ParseBytes(c.MaxFileSize); err == nil && n > 0 {
		return n
	}
	return defaultMaxFileSize
}

// Finalize applies defaults, environment overrides, and validation.
// Malformed numeric environment values are errors.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge copies every field overlay sets.
func (c *Config) Merge(overlay *Config) {
	c.BaseURL = cmp.Or(overlay.BaseURL, c.BaseURL)
	c.PredictPath = cmp.Or(overlay.PredictPath, c.PredictPath)
	c.Timeout = cmp.Or(overlay.Timeout, c.Timeout)
	c.Token = cmp.Or(overlay.Token, c.Token)
	c.Rate = cmp.Or(overlay.Rate, c.Rate)
	c.Burst = cmp.Or(overlay.Burst, c.Burst)
	c.MaxFileSize = cmp.Or(overlay.MaxFileSize, c.MaxFileSize)
}

func (c *Config) loadDefaults() {
	c.BaseURL = cmp.Or(c.BaseURL, "https://yogeshdandawate-maria26-floor-plan-lora.hf.space")
	c.PredictPath = cmp.Or(c.PredictPath, "/api/predict")
	c.Timeout = cmp.Or(c.Timeout, "2m")
	c.Rate = cmp.Or(c.Rate, 1)
	c.Burst = cmp.Or(c.Burst, 3)
	c.MaxFileSize = cmp.Or(c.MaxFileSize, "20MB")
}

func (c *Config) loadEnv(env *Env) error {
	for name, dst := range map[string]*string{
		env.BaseURL:     &c.BaseURL,
		env.PredictPath: &c.PredictPath,
		env.Timeout:     &c.Timeout,
		env.Token:       &c.Token,
		env.MaxFileSize: &c.MaxFileSize,
	} {
		if v := lookup(name); v != "" {
			*dst = v
		}
	}

	if v := lookup(env.Rate); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", env.Rate, err)
		}
		c.Rate = f
	}
	if v := lookup(env.Burst); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env.Burst, err)
		}
		c.Burst = n
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
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q", c.BaseURL)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.Burst < 1 {
		return errors.New("burst must be positive")
	}
	if n, err := formatting.ParseBytes(c.MaxFileSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_file_size %q", c.MaxFileSize)
	}
	return nil
}
