package generations

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/prompts"
	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// Handler provides HTTP endpoints for floor plan generation.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "generations"),
	}
}

// Routes returns the route group definition for generation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Generate, Summary: "Generate floor plan images", Request: "FormState", Response: "GenerationResult"},
		},
	}
}

// Generate decodes a design form and returns one image per requested floor.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	form, err := prompts.DecodeForm(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Generate(r.Context(), form)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewResponse(result))
}
