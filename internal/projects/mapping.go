package projects

import (
	"net/url"

	"github.com/JaimeStill/stylarch/pkg/query"
	"github.com/JaimeStill/stylarch/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("type", "Type").
	Project("status", "Status").
	Project("thumbnail", "Thumbnail").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UpdatedAt",
	Descending: true,
}

// Filters narrows project queries. Nil fields are ignored.
type Filters struct {
	Type   *string `json:"type,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Type", f.Type).
		WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// The value "all" is treated as no filter.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" && t != "all" {
		f.Type = &t
	}

	if s := values.Get("status"); s != "" && s != "all" {
		f.Status = &s
	}

	return f
}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Status,
		&p.Thumbnail,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
