package content

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/routes"
)

// FAQResponse pairs the FAQ list with the support contact shown beneath it.
type FAQResponse struct {
	FAQs    []FAQ   `json:"faqs"`
	Contact Contact `json:"contact"`
}

// Handler serves static content.
type Handler struct {
	content *Content
	logger  *slog.Logger
}

func NewHandler(content *Content, logger *slog.Logger) *Handler {
	return &Handler{
		content: content,
		logger:  logger.With("handler", "content"),
	}
}

// Routes returns the route group definition for content endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/content",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/faqs", Handler: h.FAQs, Summary: "List FAQs and contact details", Response: "FAQs"},
			{Method: "GET", Pattern: "/guides", Handler: h.Guides, Summary: "List design guides", Response: "Guides"},
			{Method: "GET", Pattern: "/quick-access", Handler: h.QuickAccess, Summary: "List quick access tiles", Response: "Tiles"},
		},
	}
}

func (h *Handler) FAQs(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FAQResponse{
		FAQs:    h.content.FAQs,
		Contact: h.content.Contact,
	})
}

func (h *Handler) Guides(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.content.Guides)
}

func (h *Handler) QuickAccess(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.content.QuickAccess)
}
