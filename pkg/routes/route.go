// Package routes declares HTTP routes as data so domains can describe their
// endpoints and the API module can register and document them.
package routes

import (
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. The remaining fields
// only shape the generated OpenAPI operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	Summary string

	// Request and Response name component schemas for JSON bodies.
	Request  string
	Response string

	// Upload names the multipart file field the handler reads.
	Upload string

	// Produces is the content type of a non-JSON success body.
	Produces string

	// Status overrides the success status: 200, or 204 for DELETE.
	Status int

	Query []*openapi.Parameter
}

func (r Route) status() int {
	switch {
	case r.Status != 0:
		return r.Status
	case r.Method == http.MethodDelete:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}
