package designs

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/gradio"
	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

var listQuery = openapi.PageQuery(
	openapi.QueryParam("project_id", "string", "Only designs of this project", false),
	openapi.QueryParam("kind", "string", "image or report", false),
	openapi.QueryParam("filename", "string", "Filename contains this text", false),
)

// ExportFilename is the attachment name of a design PDF export.
const ExportFilename = "floor-plans.pdf"

// Handler provides HTTP endpoints for design library operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, pagination config, and upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "designs"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for design endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/designs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, Summary: "List saved designs", Response: "DesignPage", Query: listQuery},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, Summary: "Find a design", Response: "Design"},
			{Method: "GET", Pattern: "/{id}/download", Handler: h.Download, Summary: "Download a design file", Produces: "application/octet-stream"},
			{Method: "POST", Pattern: "", Handler: h.Save, Summary: "Save a generated design to a project", Request: "SaveDesign", Response: "Design", Status: http.StatusCreated},
			{Method: "POST", Pattern: "/export", Handler: h.Export, Summary: "Export designs as a PDF", Request: "ExportDesigns", Produces: "application/pdf"},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, Summary: "Delete a design"},
		},
	}
}

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

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrInvalidDesign, err))
		return uuid.Nil, false
	}
	return id, true
}

// decode reads a JSON command, mapping an oversized body to ErrTooLarge.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := handlers.DecodeJSON(w, r, h.maxUploadSize, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, handlers.ErrBodyTooLarge):
		h.respond(w, 0, nil, ErrTooLarge)
	default:
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrInvalidDesign, err))
	}
	return false
}

// List filters by project_id, kind, and filename on top of paging and sort.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.sys.List(r.Context(), pagination.PageRequestFromQuery(q, h.pagination), FiltersFromQuery(q))
	h.respond(w, http.StatusOK, result, err)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pathID(w, r); ok {
		d, err := h.sys.Find(r.Context(), id)
		h.respond(w, http.StatusOK, d, err)
	}
}

// Download streams the stored file. The blob's content type wins over the
// one recorded at save time.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	d, blob, err := h.sys.Download(r.Context(), id)
	if err != nil {
		h.respond(w, 0, nil, err)
		return
	}
	defer blob.Body.Close()

	contentType := cmp.Or(blob.ContentType, d.ContentType)
	handlers.StreamAttachment(w, h.logger, contentType, d.Filename, blob.ContentLength, blob.Body)
}

// Save stores a generated image, sent as a data URI, in a project's library.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if !h.decode(w, r, &req) {
		return
	}

	img, err := gradio.ParseDataURI(req.Image)
	if err != nil {
		h.respond(w, 0, nil, fmt.Errorf("%w: %w", ErrNotImage, err))
		return
	}

	d, err := h.sys.Create(r.Context(), CreateCommand{
		ProjectID:   req.ProjectID,
		Kind:        KindImage,
		Prompt:      req.Prompt,
		Filename:    req.Filename,
		ContentType: img.ContentType,
		Data:        img.Data,
	})
	h.respond(w, http.StatusCreated, d, err)
}

// Export combines the requested image designs into one PDF download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !h.decode(w, r, &req) {
		return
	}

	pdf, err := h.sys.ExportPDF(r.Context(), req.IDs)
	if err != nil {
		h.respond(w, 0, nil, err)
		return
	}

	handlers.Attachment(w, "application/pdf", ExportFilename, int64(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// Delete removes a design and its blob.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pathID(w, r); ok {
		h.respond(w, http.StatusNoContent, nil, h.sys.Delete(r.Context(), id))
	}
}
