package routes

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/JaimeStill/stylarch/pkg/openapi"
)

var pathParam = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(\.\.\.)?\}`)

// Document adds an operation to spec for every route in groups. Wildcard
// segments such as {key...} are documented as plain path parameters.
func Document(spec *openapi.Spec, groups ...Group) {
	walk(groups, func(r resolved) {
		path := pathParam.ReplaceAllString(r.path, "{$1}")
		if path == "" {
			path = "/"
		}

		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}
		item.Set(r.Method, operation(r.Route, path, r.tags))
	})
}

func operation(route Route, path string, tags []string) *openapi.Operation {
	op := &openapi.Operation{
		Summary:    route.Summary,
		Tags:       tags,
		Parameters: route.Query,
		Responses:  map[int]*openapi.Response{route.status(): success(route)},
	}

	for _, m := range pathParam.FindAllStringSubmatch(path, -1) {
		op.Parameters = append(op.Parameters, openapi.PathParam(m[1]))
	}
	if strings.Contains(path, "{") {
		op.Responses[http.StatusNotFound] = openapi.ResponseRef("NotFound")
	}

	switch {
	case route.Upload != "":
		op.RequestBody = openapi.RequestBodyMultipart(route.Upload, "File to upload")
		op.Responses[http.StatusRequestEntityTooLarge] = openapi.ResponseRef("PayloadTooLarge")
	case route.Request != "":
		op.RequestBody = openapi.RequestBodyJSON(route.Request, true)
	}
	if op.RequestBody != nil || len(route.Query) > 0 {
		op.Responses[http.StatusBadRequest] = openapi.ResponseRef("BadRequest")
	}
	return op
}

func success(route Route) *openapi.Response {
	switch {
	case route.Response != "":
		return openapi.ResponseJSON(http.StatusText(route.status()), route.Response)
	case route.Produces != "":
		return openapi.ResponseBinary(http.StatusText(route.status()), route.Produces)
	default:
		return &openapi.Response{Description: http.StatusText(route.status())}
	}
}
