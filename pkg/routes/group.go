package routes

import (
	"net/http"
	"slices"
	"strings"
)

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// Group organizes routes under a common prefix. Middleware wraps every route
// in the group and its children, outermost first. A group without Tags is
// tagged with its prefix; children inherit their parent's tags.
type Group struct {
	Prefix     string
	Tags       []string
	Routes     []Route
	Children   []Group
	Middleware []Middleware
}

// resolved is a route with its group context applied.
type resolved struct {
	Route
	path       string
	tags       []string
	middleware []Middleware
}

// walk calls fn for every route in groups, depth first.
func walk(groups []Group, fn func(resolved)) {
	var visit func(g Group, prefix string, tags []string, mw []Middleware)
	visit = func(g Group, prefix string, tags []string, mw []Middleware) {
		prefix += g.Prefix
		mw = append(slices.Clip(mw), g.Middleware...)
		switch {
		case len(g.Tags) > 0:
			tags = g.Tags
		case len(tags) == 0 && g.Prefix != "":
			tags = []string{strings.TrimPrefix(g.Prefix, "/")}
		}

		for _, r := range g.Routes {
			fn(resolved{Route: r, path: prefix + r.Pattern, tags: tags, middleware: mw})
		}
		for _, child := range g.Children {
			visit(child, prefix, tags, mw)
		}
	}

	for _, g := range groups {
		visit(g, "", nil, nil)
	}
}

// Register adds every route in groups to mux, wrapped in its group middleware.
func Register(mux *http.ServeMux, groups ...Group) {
	walk(groups, func(r resolved) {
		var h http.Handler = r.Handler
		for _, mw := range slices.Backward(r.middleware) {
			h = mw(h)
		}
		mux.Handle(r.Method+" "+r.path, h)
	})
}
