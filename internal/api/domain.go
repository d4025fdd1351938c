package api

import (
	"fmt"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/content"
	"github.com/JaimeStill/stylarch/internal/designs"
	"github.com/JaimeStill/stylarch/internal/generations"
	"github.com/JaimeStill/stylarch/internal/interpretations"
	"github.com/JaimeStill/stylarch/internal/projects"
	"github.com/JaimeStill/stylarch/internal/styles"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Content         *content.Content
	Designs         designs.System
	Generations     generations.System
	Interpretations interpretations.System
	Projects        projects.System
	Styles          *styles.Catalog
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	catalog, err := styles.Default()
	if err != nil {
		return nil, fmt.Errorf("load style catalog: %w", err)
	}

	pages, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}

	designsSystem := designs.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	projectsSystem := projects.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
		cfg.Web.ShareBaseURL,
	)

	generationsSystem := generations.New(
		runtime.Gradio,
		runtime.Logger,
		cfg.Generator.MaxConcurrency,
	)

	interpretationsSystem := interpretations.New(
		runtime.Interpreter,
		designsSystem,
		runtime.Logger,
	)

	return &Domain{
		Content:         pages,
		Designs:         designsSystem,
		Generations:     generationsSystem,
		Interpretations: interpretationsSystem,
		Projects:        projectsSystem,
		Styles:          catalog,
	}, nil
}
