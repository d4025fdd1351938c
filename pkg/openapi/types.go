package openapi

import "net/http"

// Info is the document's info object.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server is a base URL the operations are served under.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag names a group of operations in the rendered reference.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations of one path, keyed by method.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Patch  *Operation `json:"patch,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

// Set stores op under method. HEAD and other methods without a field
// are dropped.
func (p *PathItem) Set(method string, op *Operation) {
	slot := map[string]**Operation{
		http.MethodGet:    &p.Get,
		http.MethodPost:   &p.Post,
		http.MethodPut:    &p.Put,
		http.MethodPatch:  &p.Patch,
		http.MethodDelete: &p.Delete,
	}[method]
	if slot != nil {
		*slot = op
	}
}

type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content"`
}

// Response is either inline or a $ref into components.responses.
type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is the subset of JSON Schema the STYLARCH payloads need.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Format               string             `json:"format,omitempty"`
	Description          string             `json:"description,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
	Example              any                `json:"example,omitempty"`
}

type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// SchemaRef points at components.schemas[name].
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef points at components.responses[name].
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

func single(contentType string, schema *Schema) map[string]*MediaType {
	return map[string]*MediaType{contentType: {Schema: schema}}
}

func binary() *Schema {
	return &Schema{Type: "string", Format: "binary"}
}

func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{Required: required, Content: single("application/json", SchemaRef(schemaName))}
}

// RequestBodyMultipart is a form upload carrying one required file field.
func RequestBodyMultipart(field, description string) *RequestBody {
	file := binary()
	file.Description = description
	return &RequestBody{
		Required: true,
		Content: single("multipart/form-data", &Schema{
			Type:       "object",
			Required:   []string{field},
			Properties: map[string]*Schema{field: file},
		}),
	}
}

func ResponseJSON(description, schemaName string) *Response {
	return &Response{Description: description, Content: single("application/json", SchemaRef(schemaName))}
}

// ResponseBinary is a file download of contentType.
func ResponseBinary(description, contentType string) *Response {
	return &Response{Description: description, Content: single(contentType, binary())}
}

// PathParam is a required path segment. Segments named id are UUIDs.
func PathParam(name string) *Parameter {
	schema := &Schema{Type: "string"}
	if name == "id" {
		schema.Format = "uuid"
	}
	return &Parameter{Name: name, In: "path", Required: true, Schema: schema}
}

func QueryParam(name, typ, description string, required bool) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}
