package prompts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// BuildResponse is the body returned by the build endpoint.
type BuildResponse struct {
	Prompt string `json:"prompt"`
}

// Handler provides HTTP endpoints for prompt assembly.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/options", Handler: h.Options, Summary: "List form options and defaults", Response: "FormOptions"},
			{Method: "POST", Pattern: "/build", Handler: h.Build, Summary: "Build a prompt from a design form", Request: "FormState", Response: "PromptPreview"},
		},
	}
}

// Options returns the form option catalog and defaults.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FormOptions())
}

// Build decodes a FormState over the defaults, validates it, and returns the prompt.
func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	form, err := DecodeForm(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := form.Validate(); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BuildResponse{Prompt: Build(form)})
}

// DecodeForm reads a JSON FormState from the request body. Omitted fields keep
// their defaults.
func DecodeForm(r *http.Request) (FormState, error) {
	form := DefaultFormState()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return FormState{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return form, nil
}
