package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/api"
	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/infrastructure"
	"github.com/JaimeStill/stylarch/pkg/middleware"
	"github.com/JaimeStill/stylarch/pkg/module"
	"github.com/JaimeStill/stylarch/web/app"
	"github.com/JaimeStill/stylarch/web/scalar"
)

// Modules holds every mounted HTTP module. The API and App modules share a
// single runtime and domain.
type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime, err := api.NewRuntime(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api runtime: %w", err)
	}

	domain, err := api.NewDomain(cfg, runtime)
	if err != nil {
		return nil, err
	}

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.Web.BasePath, app.Deps{
		Generations:     domain.Generations,
		Interpretations: domain.Interpretations,
		Projects:        domain.Projects,
		Styles:          domain.Styles,
		Content:         domain.Content,
		Pagination:      runtime.Pagination,
		MaxUploadSize:   cfg.API.MaxUploadSizeBytes(),
	}, infra.Logger)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger))

	scalarModule, err := scalar.NewModule("/scalar", cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}
	scalarModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) error {
	for _, mod := range []*module.Module{m.API, m.App, m.Scalar} {
		if err := router.Mount(mod); err != nil {
			return err
		}
	}
	return nil
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Web.BasePath+"/", http.StatusFound)
	})

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "not ready",
				"pending": infra.Lifecycle.Pending(),
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
