package styles

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

var searchQuery = []*openapi.Parameter{
	openapi.QueryParam("search", "string", "Match name or description, case-insensitive", false),
}

// Handler provides HTTP endpoints for the style catalog.
type Handler struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewHandler creates a Handler serving catalog.
func NewHandler(catalog *Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger.With("handler", "styles"),
	}
}

// Routes returns the route group definition for style endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/styles",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, Summary: "List architectural styles", Response: "Styles", Query: searchQuery},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, Summary: "Find an architectural style", Response: "Style"},
		},
	}
}

// List returns all styles, optionally narrowed by the search query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.catalog.Search(r.URL.Query().Get("search")))
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Find(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, s)
}
