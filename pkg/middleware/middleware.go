// Package middleware provides composable HTTP middleware for CORS, request
// logging, and bearer token authentication.
package middleware

import (
	"net/http"
	"slices"
)

// System manages an ordered stack of HTTP middleware. The first middleware
// added is the outermost at request time.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack []func(http.Handler) http.Handler

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	*s = append(*s, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, fn := range slices.Backward(*s) {
		handler = fn(handler)
	}
	return handler
}
