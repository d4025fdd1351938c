package module

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Router sends each request to the module that owns its first path segment.
// Paths no module owns fall through to the router's own ServeMux, which holds
// root-level endpoints such as health checks.
type Router struct {
	modules map[string]*Module
	root    *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		root:    http.NewServeMux(),
	}
}

// HandleFunc registers a root-level handler for pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.root.HandleFunc(pattern, handler)
}

// Mount attaches m at its prefix. Two modules cannot share a prefix.
func (r *Router) Mount(m *Module) error {
	if _, exists := r.modules[m.prefix]; exists {
		return fmt.Errorf("module prefix %s already mounted", m.prefix)
	}
	r.modules[m.prefix] = m
	return nil
}

// Prefixes lists the mounted module prefixes in sorted order.
func (r *Router) Prefixes() []string {
	return slices.Sorted(maps.Keys(r.modules))
}

// ServeHTTP trims one trailing slash from the path, then dispatches.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
		req.URL.Path = strings.TrimSuffix(p, "/")
	}

	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}
	r.root.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return "/" + seg
}
