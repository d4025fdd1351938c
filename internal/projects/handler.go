package projects

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

var listQuery = openapi.PageQuery(
	openapi.QueryParam("type", "string", "Residential, Commercial, or all", false),
	openapi.QueryParam("status", "string", "Draft, In Progress, Completed, or all", false),
)

// maxBody caps project command bodies.
const maxBody = 64 << 10

// Handler provides HTTP endpoints for project operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "projects"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for project endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/projects",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, Summary: "List projects", Response: "ProjectPage", Query: listQuery},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, Summary: "Find a project", Response: "Project"},
			{Method: "GET", Pattern: "/{id}/share", Handler: h.Share, Summary: "Get a project share link", Response: "ShareLink"},
			{Method: "POST", Pattern: "", Handler: h.Create, Summary: "Create a project", Request: "CreateProject", Response: "Project", Status: http.StatusCreated},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update, Summary: "Update a project", Request: "UpdateProject", Response: "Project"},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, Summary: "Delete a project"},
		},
	}
}

// respond writes v with status, or err through MapHTTPStatus.
func (h *Handler) respond(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if v == nil {
		w.WriteHeader(status)
		return
	}
	handlers.RespondJSON(w, status, v)
}

// List reads search, type, status, sort, and paging from the query string.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.sys.List(r.Context(), pagination.PageRequestFromQuery(q, h.pagination), FiltersFromQuery(q))
	h.respond(w, http.StatusOK, result, err)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pathID(w, r); ok {
		p, err := h.sys.Find(r.Context(), id)
		h.respond(w, http.StatusOK, p, err)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(w, r, maxBody, &cmd); err != nil {
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrInvalidProject, err))
		return
	}
	p, err := h.sys.Create(r.Context(), cmd)
	h.respond(w, http.StatusCreated, p, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := handlers.DecodeJSON(w, r, maxBody, &cmd); err != nil {
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrInvalidProject, err))
		return
	}
	p, err := h.sys.Update(r.Context(), id, cmd)
	h.respond(w, http.StatusOK, p, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pathID(w, r); ok {
		h.respond(w, http.StatusNoContent, nil, h.sys.Delete(r.Context(), id))
	}
}

// Share returns the public link for a project.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pathID(w, r); ok {
		link, err := h.sys.Share(r.Context(), id)
		h.respond(w, http.StatusOK, link, err)
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrInvalidProject, err))
		return uuid.Nil, false
	}
	return id, true
}
