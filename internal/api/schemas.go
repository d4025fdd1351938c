package api

import "github.com/JaimeStill/stylarch/pkg/openapi"

func str(description string) *openapi.Schema {
	return &openapi.Schema{Type: "string", Description: description}
}

func integer(description string) *openapi.Schema {
	return &openapi.Schema{Type: "integer", Description: description}
}

func timestamp() *openapi.Schema {
	return &openapi.Schema{Type: "string", Format: "date-time"}
}

func uuidSchema() *openapi.Schema {
	return &openapi.Schema{Type: "string", Format: "uuid"}
}

func enum(values ...any) *openapi.Schema {
	return &openapi.Schema{Type: "string", Enum: values}
}

func arrayOf(name string) *openapi.Schema {
	return &openapi.Schema{Type: "array", Items: openapi.SchemaRef(name)}
}

func object(required []string, props map[string]*openapi.Schema) *openapi.Schema {
	return &openapi.Schema{Type: "object", Required: required, Properties: props}
}

func page(item string) *openapi.Schema {
	return object([]string{"data", "total", "page", "page_size", "total_pages"}, map[string]*openapi.Schema{
		"data":        arrayOf(item),
		"total":       integer("Matching rows across all pages"),
		"page":        integer("Current page (1-indexed)"),
		"page_size":   integer("Rows per page"),
		"total_pages": integer(""),
	})
}

// schemas describes every JSON body the API reads or writes.
func schemas() map[string]*openapi.Schema {
	projectType := enum("Residential", "Commercial")
	projectStatus := enum("Draft", "In Progress", "Completed")
	option := object([]string{"value", "label"}, map[string]*openapi.Schema{
		"value": str(""),
		"label": str(""),
	})

	return map[string]*openapi.Schema{
		"FormState": object(nil, map[string]*openapi.Schema{
			"project_type":         enum("apartment", "single-family", "townhouse", "villa", "bungalow", "other"),
			"overall_size":         enum("small", "medium", "large"),
			"bedroom_count":        integer("Bedrooms, 1 to 10"),
			"bathroom_count":       enum("1", "2", "3", "4+"),
			"kitchen_size":         enum("small", "large"),
			"window_level":         enum("few", "many"),
			"selected_features":    {Type: "array", Items: str("Feature label")},
			"special_requirements": str("Free text appended to the prompt"),
			"project_name":         str(""),
			"building_size":        integer("Building size in square meters"),
			"floors":               integer("Floors to generate, 1 to 3"),
		}),
		"Option": option,
		"FormOptions": object(nil, map[string]*openapi.Schema{
			"project_types": arrayOf("Option"),
			"overall_sizes": arrayOf("Option"),
			"bathrooms":     arrayOf("Option"),
			"kitchens":      arrayOf("Option"),
			"windows":       arrayOf("Option"),
			"floors":        arrayOf("Option"),
			"bedrooms": object([]string{"min", "max"}, map[string]*openapi.Schema{
				"min": integer(""),
				"max": integer(""),
			}),
			"features": {Type: "array", Items: str("")},
			"defaults": openapi.SchemaRef("FormState"),
		}),
		"PromptPreview": object([]string{"prompt"}, map[string]*openapi.Schema{
			"prompt": str("Generated description; empty when the form is blank"),
		}),
		"GeneratedImage": object([]string{"floor", "prompt", "content_type", "data_uri"}, map[string]*openapi.Schema{
			"floor":        integer("Floor number, starting at 1"),
			"prompt":       str("Prompt sent for this floor"),
			"content_type": str(""),
			"data_uri":     str("Base64 data URI of the image"),
		}),
		"GenerationResult": object([]string{"prompt", "images", "generated_at"}, map[string]*openapi.Schema{
			"prompt":       str(""),
			"images":       arrayOf("GeneratedImage"),
			"generated_at": timestamp(),
		}),
		"Report": object([]string{"markdown", "html", "filename", "backend", "analyzed_at"}, map[string]*openapi.Schema{
			"markdown":    str("Analysis report in markdown"),
			"html":        str("Sanitized HTML rendering of the markdown"),
			"filename":    str("Suggested download name"),
			"backend":     str("Interpreter that produced the report"),
			"analyzed_at": timestamp(),
			"design":      openapi.SchemaRef("Design"),
		}),
		"Project": object([]string{"id", "name", "type", "status", "created_at", "updated_at"}, map[string]*openapi.Schema{
			"id":         uuidSchema(),
			"name":       str(""),
			"type":       projectType,
			"status":     projectStatus,
			"thumbnail":  str("Thumbnail image URL"),
			"created_at": timestamp(),
			"updated_at": timestamp(),
		}),
		"CreateProject": object([]string{"name", "type"}, map[string]*openapi.Schema{
			"name":      str("Unique project name"),
			"type":      projectType,
			"status":    projectStatus,
			"thumbnail": str(""),
		}),
		"UpdateProject": object(nil, map[string]*openapi.Schema{
			"name":   str(""),
			"status": projectStatus,
		}),
		"ShareLink": object([]string{"url"}, map[string]*openapi.Schema{
			"url": str("Shareable project URL"),
		}),
		"ProjectPage": page("Project"),
		"Design": object([]string{"id", "project_id", "kind", "filename", "content_type", "size_bytes", "created_at"}, map[string]*openapi.Schema{
			"id":           uuidSchema(),
			"project_id":   uuidSchema(),
			"project_name": str(""),
			"kind":         enum("image", "report"),
			"prompt":       str("Prompt the design was generated from"),
			"filename":     str(""),
			"content_type": str(""),
			"size_bytes":   integer(""),
			"storage_key":  str("Blob storage key"),
			"created_at":   timestamp(),
		}),
		"SaveDesign": object([]string{"project_id", "image"}, map[string]*openapi.Schema{
			"project_id": uuidSchema(),
			"prompt":     str(""),
			"image":      str("Base64 data URI of a generated image"),
			"filename":   str(""),
		}),
		"ExportDesigns": object([]string{"ids"}, map[string]*openapi.Schema{
			"ids": {Type: "array", Items: uuidSchema()},
		}),
		"DesignPage": page("Design"),
		"Style": object([]string{"id", "name"}, map[string]*openapi.Schema{
			"id":                         str("Slug identifier"),
			"name":                       str(""),
			"description":                str(""),
			"floor_plan_characteristics": str(""),
			"prompt":                     str("Prompt seeded into the design form"),
			"image":                      str("Preview image URL"),
			"design_link":                str("App link that opens the design form with the prompt"),
		}),
		"Styles": arrayOf("Style"),
		"FAQ": object([]string{"question", "answer"}, map[string]*openapi.Schema{
			"question": str(""),
			"answer":   str(""),
		}),
		"FAQs": object([]string{"faqs", "contact"}, map[string]*openapi.Schema{
			"faqs": arrayOf("FAQ"),
			"contact": object(nil, map[string]*openapi.Schema{
				"label": str(""),
				"url":   str(""),
				"note":  str(""),
			}),
		}),
		"Guide": object([]string{"title", "body"}, map[string]*openapi.Schema{
			"title": str(""),
			"body":  str("Markdown body"),
			"html":  str("Rendered body"),
		}),
		"Guides": arrayOf("Guide"),
		"Tile": object([]string{"title", "path"}, map[string]*openapi.Schema{
			"title":       str(""),
			"description": str(""),
			"path":        str("App-relative link"),
		}),
		"Tiles": arrayOf("Tile"),
		"BlobMeta": object([]string{"key", "content_type", "content_length", "last_modified"}, map[string]*openapi.Schema{
			"key":            str(""),
			"content_type":   str(""),
			"content_length": integer(""),
			"last_modified":  timestamp(),
		}),
		"BlobList": object([]string{"blobs"}, map[string]*openapi.Schema{
			"blobs":       arrayOf("BlobMeta"),
			"next_marker": str("Marker for the next page; absent on the last page"),
		}),
	}
}
