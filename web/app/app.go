// Package app serves the server-rendered STYLARCH pages: landing, design
// form with live prompt preview, interpretation upload, projects, and FAQs.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/content"
	"github.com/JaimeStill/stylarch/internal/generations"
	"github.com/JaimeStill/stylarch/internal/interpretations"
	"github.com/JaimeStill/stylarch/internal/projects"
	"github.com/JaimeStill/stylarch/internal/styles"
	"github.com/JaimeStill/stylarch/pkg/module"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/web"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layout = "app.html"

var (
	homeView      = web.ViewDef{Route: "/{$}", Template: "home.html", Title: "STYLARCH", Nav: "home"}
	designView    = web.ViewDef{Route: "/design", Template: "design.html", Title: "Design", Nav: "design"}
	interpretView = web.ViewDef{Route: "/interpret", Template: "interpret.html", Title: "Interpret", Nav: "interpret"}
	projectsView  = web.ViewDef{Route: "/projects", Template: "projects.html", Title: "Projects", Nav: "projects"}
	faqsView      = web.ViewDef{Route: "/faqs", Template: "faqs.html", Title: "FAQs", Nav: "faqs"}
	notFoundView  = web.ViewDef{Template: "not-found.html", Title: "Not Found"}
)

var views = []web.ViewDef{homeView, designView, interpretView, projectsView, faqsView, notFoundView}

// Deps are the domain systems the pages render from.
type Deps struct {
	Generations     generations.System
	Interpretations interpretations.System
	Projects        projects.System
	Styles          *styles.Catalog
	Content         *content.Content
	Pagination      pagination.Config
	MaxUploadSize   int64
}

type pages struct {
	deps   Deps
	views  *web.TemplateSet
	logger *slog.Logger
}

// NewModule creates the web app module mounted at basePath.
func NewModule(basePath string, deps Deps, logger *slog.Logger) (*module.Module, error) {
	ts, err := web.NewTemplateSet(web.TemplateConfig{
		LayoutFS:   templateFS,
		LayoutGlob: "templates/layouts/*.html",
		ViewFS:     templateFS,
		ViewSubdir: "templates/views",
		BasePath:   basePath,
		Funcs:      funcs,
		Views:      views,
	})
	if err != nil {
		return nil, fmt.Errorf("load app templates: %w", err)
	}

	assets, err := web.Assets(staticFS, "static", "/static/")
	if err != nil {
		return nil, err
	}

	p := &pages{
		deps:   deps,
		views:  ts,
		logger: logger.With("module", "app"),
	}

	return module.New(basePath, p.router(assets))
}

func (p *pages) router(assets http.Handler) http.Handler {
	r := web.NewRouter(p.views.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	r.Get(homeView.Route, p.home)
	r.Get(designView.Route, p.design)
	r.Post(designView.Route, p.generate)
	r.Get(interpretView.Route, p.views.PageHandler(layout, interpretView))
	r.Post(interpretView.Route, p.interpret)
	r.Get(projectsView.Route, p.projects)
	r.Get(faqsView.Route, p.faqs)
	r.Handle("GET /static/", assets)

	return r
}
