package interpretations

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/formatting"
	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// Handler provides HTTP endpoints for floor plan interpretation.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
	saveAuth      routes.Middleware
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "interpretations"),
		maxUploadSize: maxUploadSize,
	}
}

// WithSaveAuth gates requests that save to a project behind mw. Analysis
// without a project_id stays open.
func (h *Handler) WithSaveAuth(mw routes.Middleware) *Handler {
	h.saveAuth = mw
	return h
}

// Routes returns the route group definition for interpretation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/interpretations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Interpret, Summary: "Analyze an uploaded floor plan", Upload: "file", Response: "Report"},
			{Method: "POST", Pattern: "/report", Handler: h.Report, Summary: "Download an analysis as markdown", Upload: "file", Produces: "text/markdown"},
		},
	}
}

// Interpret analyzes a multipart "file" upload and returns the report as JSON.
// When a project_id form value is present the report is also saved to that
// project, and the request must pass the save auth middleware first.
func (h *Handler) Interpret(w http.ResponseWriter, r *http.Request) {
	img, err := ReadUpload(w, r, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var projectID uuid.UUID
	if raw := strings.TrimSpace(r.FormValue("project_id")); raw != "" {
		projectID, err = uuid.Parse(raw)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(ErrInvalidProjectID), fmt.Errorf("%w: %q", ErrInvalidProjectID, raw))
			return
		}
	}

	if projectID == uuid.Nil || h.saveAuth == nil {
		h.interpret(w, r, img, projectID)
		return
	}
	h.saveAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.interpret(w, r, img, projectID)
	})).ServeHTTP(w, r)
}

func (h *Handler) interpret(w http.ResponseWriter, r *http.Request, img Image, projectID uuid.UUID) {
	report, err := h.sys.Interpret(r.Context(), img)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if projectID != uuid.Nil {
		if err := h.sys.Save(r.Context(), projectID, report); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Report analyzes a multipart "file" upload and returns the markdown as a file download.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	img, err := ReadUpload(w, r, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	report, err := h.sys.Interpret(r.Context(), img)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.Attachment(w, ReportContentType, report.Filename, int64(len(report.Markdown)))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, report.Markdown)
}

// ReadUpload reads the multipart "file" field of r, rejecting bodies larger
// than maxUploadSize with ErrTooLarge. The content type is taken from the part
// header and sniffed when the header is missing or generic.
func ReadUpload(w http.ResponseWriter, r *http.Request, maxUploadSize int64) (Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Image{}, fmt.Errorf("%w of %s", ErrTooLarge, formatting.FormatBytes(maxUploadSize))
		}
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return Image{}, fmt.Errorf("%w: missing file field", ErrInvalidImage)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	return Image{
		Filename:    header.Filename,
		ContentType: detectContentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
