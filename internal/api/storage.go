package api

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/openapi"
	"github.com/JaimeStill/stylarch/pkg/routes"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

var blobQuery = []*openapi.Parameter{
	openapi.QueryParam("prefix", "string", "Only keys starting with this prefix, such as designs/{project_id}/", false),
	openapi.QueryParam("marker", "string", "next_marker from the previous page", false),
	openapi.QueryParam("max_results", "integer", "Page size, capped by the server", false),
}

// storageHandler exposes saved design blobs read-only, for inspection and
// direct downloads by key.
type storageHandler struct {
	store  storage.System
	logger *slog.Logger
	limit  int32
}

func newStorageHandler(store storage.System, logger *slog.Logger, limit int32) *storageHandler {
	return &storageHandler{
		store:  store,
		logger: logger.With("handler", "storage"),
		limit:  limit,
	}
}

func (h *storageHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/storage",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.list, Summary: "List stored blobs", Response: "BlobList", Query: blobQuery},
			{Method: "GET", Pattern: "/download/{key...}", Handler: h.download, Summary: "Download a stored blob", Produces: "application/octet-stream"},
			{Method: "GET", Pattern: "/{key...}", Handler: h.find, Summary: "Find stored blob metadata", Response: "BlobMeta"},
		},
	}
}

func (h *storageHandler) fail(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
}

func (h *storageHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size, err := storage.ParseMaxResults(q.Get("max_results"), h.limit)
	if err != nil {
		h.fail(w, err)
		return
	}

	list, err := h.store.List(r.Context(), q.Get("prefix"), q.Get("marker"), size)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

func (h *storageHandler) find(w http.ResponseWriter, r *http.Request) {
	meta, err := h.store.Find(r.Context(), r.PathValue("key"))
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, meta)
}

func (h *storageHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	blob, err := h.store.Download(r.Context(), key)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer blob.Body.Close()

	handlers.StreamAttachment(w, h.logger, blob.ContentType, path.Base(key), blob.ContentLength, blob.Body)
}
