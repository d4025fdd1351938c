// Package module composes the server from independently routed HTTP modules,
// each owning one top-level path segment and its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/stylarch/pkg/middleware"
)

// Module serves every request under a single-segment prefix such as "/api".
// The inner handler sees paths with the prefix removed.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a Module for prefix. The prefix must be one path segment with a
// leading slash.
func New(prefix string, handler http.Handler) (*Module, error) {
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}, nil
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module's middleware stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the inner handler wrapped in the module's middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve dispatches req to the inner handler with the prefix stripped.
// The original request is left untouched.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	inner := req.Clone(req.Context())
	inner.URL.Path = path
	inner.URL.RawPath = ""

	m.Handler().ServeHTTP(w, inner)
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix is empty")
	case prefix[0] != '/':
		return fmt.Errorf("module prefix %q must start with /", prefix)
	case prefix == "/" || strings.Contains(prefix[1:], "/"):
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
