package designs

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/query"
	"github.com/JaimeStill/stylarch/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "designs", "d").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("kind", "Kind").
	Project("prompt", "Prompt").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt").
	Join("public", "projects", "p", "JOIN", "d.project_id = p.id").
	Project("name", "ProjectName")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters narrows design queries. Nil fields are ignored.
type Filters struct {
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Kind      *string    `json:"kind,omitempty"`
	Filename  *string    `json:"filename,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ProjectID", f.ProjectID).
		WhereEquals("Kind", f.Kind).
		WhereContains("Filename", f.Filename)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// A malformed project_id is ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if pid := values.Get("project_id"); pid != "" {
		if id, err := uuid.Parse(pid); err == nil {
			f.ProjectID = &id
		}
	}

	if k := values.Get("kind"); k != "" {
		f.Kind = &k
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	return f
}

func scanDesign(s repository.Scanner) (Design, error) {
	var d Design
	err := s.Scan(
		&d.ID,
		&d.ProjectID,
		&d.Kind,
		&d.Prompt,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.StorageKey,
		&d.CreatedAt,
		&d.ProjectName,
	)
	return d, err
}
