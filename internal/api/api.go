// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/pkg/middleware"
	"github.com/JaimeStill/stylarch/pkg/module"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// NewModule creates the API module with all domain handlers, the generated
// OpenAPI document, and CORS and request logging middleware. The runtime and
// domain are shared with the web app module.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	groups := routeGroups(domain, cfg, runtime)

	spec, err := buildSpec(cfg, groups)
	if err != nil {
		return nil, fmt.Errorf("build openapi spec: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, groups, spec)

	m, err := module.New(cfg.API.BasePath, mux)
	if err != nil {
		return nil, err
	}
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}

// buildSpec renders the OpenAPI document once; it is served from memory.
func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(&cfg.API.OpenAPI, cfg.Version)
	spec.AddServer(cfg.API.BasePath, "STYLARCH JSON API")
	spec.Components.AddSchemas(schemas())

	routes.Document(spec, groups...)
	return spec.JSON()
}
