package api

import (
	"net/http"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/content"
	"github.com/JaimeStill/stylarch/internal/prompts"
	"github.com/JaimeStill/stylarch/internal/styles"
	"github.com/JaimeStill/stylarch/pkg/middleware"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// openMethods pass through auth on protected groups.
var openMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}

func routeGroups(domain *Domain, cfg *config.Config, runtime *Runtime) []routes.Group {
	maxUpload := cfg.API.MaxUploadSizeBytes()

	projectsGroup := domain.Projects.Handler().Routes()
	designsGroup := domain.Designs.Handler(maxUpload).Routes()
	interpretationsHandler := domain.Interpretations.Handler(maxUpload)
	if runtime.Verifier != nil {
		auth := middleware.Auth(runtime.Verifier, runtime.Logger, openMethods...)
		projectsGroup.Middleware = append(projectsGroup.Middleware, auth)
		designsGroup.Middleware = append(designsGroup.Middleware, auth)
		interpretationsHandler.WithSaveAuth(auth)
	}

	return []routes.Group{
		prompts.NewHandler(runtime.Logger).Routes(),
		domain.Generations.Handler().Routes(),
		interpretationsHandler.Routes(),
		projectsGroup,
		designsGroup,
		styles.NewHandler(domain.Styles, runtime.Logger).Routes(),
		content.NewHandler(domain.Content, runtime.Logger).Routes(),
		newStorageHandler(runtime.Storage, runtime.Logger, cfg.Storage.MaxListSize).routes(),
	}
}

func registerRoutes(mux *http.ServeMux, groups []routes.Group, spec []byte) {
	routes.Register(mux, groups...)
	mux.Handle("GET /openapi.json", openapi.Handler(spec))
}
