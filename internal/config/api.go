package config

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/stylarch/pkg/formatting"
	"github.com/JaimeStill/stylarch/pkg/middleware"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "STYLARCH_CORS_ENABLED",
	Origins:          "STYLARCH_CORS_ORIGINS",
	AllowedMethods:   "STYLARCH_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "STYLARCH_CORS_ALLOWED_HEADERS",
	AllowCredentials: "STYLARCH_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "STYLARCH_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled:  "STYLARCH_AUTH_ENABLED",
	Issuer:   "STYLARCH_AUTH_ISSUER",
	ClientID: "STYLARCH_AUTH_CLIENT_ID",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "STYLARCH_OPENAPI_TITLE",
	Description: "STYLARCH_OPENAPI_DESCRIPTION",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "STYLARCH_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "STYLARCH_PAGINATION_MAX_PAGE_SIZE",
}

const (
	EnvAPIBasePath      = "STYLARCH_API_BASE_PATH"
	EnvAPIMaxUploadSize = "STYLARCH_API_MAX_UPLOAD_SIZE"

	defaultMaxUpload = 10 * 1024 * 1024
)

// APIConfig configures the JSON API module and the middleware in front of it.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Auth          middleware.AuthConfig `toml:"auth"`
	Pagination    pagination.Config     `toml:"pagination"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxUploadSizeBytes is the request body cap for plan uploads. An
// unparseable size yields 10MB.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	if size, err := formatting.ParseBytes(c.MaxUploadSize); err == nil {
		return size
	}
	return defaultMaxUpload
}

func (c *APIConfig) Finalize() error {
	c.BasePath = cmp.Or(os.Getenv(EnvAPIBasePath), c.BasePath, "/api")
	c.MaxUploadSize = cmp.Or(os.Getenv(EnvAPIMaxUploadSize), c.MaxUploadSize, "10MB")

	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /")
	}
	if size, err := formatting.ParseBytes(c.MaxUploadSize); err != nil || size <= 0 {
		return fmt.Errorf("invalid max_upload_size %q", c.MaxUploadSize)
	}

	return runSteps([]step{
		{"cors", func() error { return c.CORS.Finalize(corsEnv) }},
		{"auth", func() error { return c.Auth.Finalize(authEnv) }},
		{"pagination", func() error { return c.Pagination.Finalize(paginationEnv) }},
		{"openapi", func() error { return c.OpenAPI.Finalize(openapiEnv) }},
	})
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	c.BasePath = cmp.Or(overlay.BasePath, c.BasePath)
	c.MaxUploadSize = cmp.Or(overlay.MaxUploadSize, c.MaxUploadSize)

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}
