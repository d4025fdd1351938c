// Package projects implements the project library: named residential or
// commercial design efforts that group saved designs and can be shared by link.
package projects

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type classifies a project.
type Type string

const (
	TypeResidential Type = "Residential"
	TypeCommercial  Type = "Commercial"
)

// Status tracks a project's progress.
type Status string

const (
	StatusDraft      Status = "Draft"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Project is a saved design effort.
type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Status    Status    `json:"status"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand carries the fields for a new project.
// Status defaults to Draft when empty.
type CreateCommand struct {
	Name      string `json:"name"`
	Type      Type   `json:"type"`
	Status    Status `json:"status,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// UpdateCommand renames a project or moves it to a new status. Nil fields are left unchanged.
type UpdateCommand struct {
	Name   *string `json:"name,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// ShareLink is the public URL for a project.
type ShareLink struct {
	URL string `json:"url"`
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases name and replaces each run of whitespace with a single hyphen.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// ShareURL returns <base>/project/<slug>.
func ShareURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/project/" + url.PathEscape(Slug(name))
}

func (t Type) valid() bool {
	return t == TypeResidential || t == TypeCommercial
}

func (s Status) valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
