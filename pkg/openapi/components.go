package openapi

import "maps"

// NewComponents creates Components holding the Error and PageRequest schemas
// and one response per error status the API returns.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 20},
					"search":    {Type: "string", Description: "Case-insensitive search text"},
					"sort":      {Type: "string", Description: "Comma-separated sort fields; prefix with - for descending", Example: "-UpdatedAt,Name"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request"),
			"Unauthorized":    errorResponse("Missing or invalid bearer token"),
			"NotFound":        errorResponse("Resource not found"),
			"Conflict":        errorResponse("Resource conflict, such as a duplicate project name"),
			"PayloadTooLarge": errorResponse("Upload exceeds the configured size limit"),
			"BadGateway":      errorResponse("Upstream generation or analysis service failed"),
		},
	}
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// AddSchemas merges schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// PageQuery returns the paging, search and sort query parameters shared by
// list endpoints, followed by extra.
func PageQuery(extra ...*Parameter) []*Parameter {
	params := []*Parameter{
		QueryParam("page", "integer", "Page number (1-indexed)", false),
		QueryParam("page_size", "integer", "Results per page", false),
		QueryParam("search", "string", "Case-insensitive search text", false),
		QueryParam("sort", "string", "Comma-separated sort fields; prefix with - for descending", false),
	}
	return append(params, extra...)
}
