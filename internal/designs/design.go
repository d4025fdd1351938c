// Package designs implements the saved design library. A design is an artifact
// attached to a project, either a generated floor plan image or an interpretation
// report, stored as a database row plus a blob.
package designs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes design artifacts.
type Kind string

const (
	KindImage  Kind = "image"
	KindReport Kind = "report"
)

// Design is a saved artifact and its blob reference.
type Design struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Kind        Kind      `json:"kind"`
	Prompt      string    `json:"prompt"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to store a new design.
type CreateCommand struct {
	ProjectID   uuid.UUID
	Kind        Kind
	Prompt      string
	Filename    string
	ContentType string
	Data        []byte
}

// SaveRequest is the JSON body for saving a generated image to a project.
// Image is a base64 data URI as returned by the generations endpoint.
type SaveRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	Prompt    string    `json:"prompt"`
	Image     string    `json:"image"`
	Filename  string    `json:"filename,omitempty"`
}

// ExportRequest lists the image designs to combine into one PDF, in page order.
type ExportRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// StoragePrefix returns the blob prefix holding every design of a project.
func StoragePrefix(projectID uuid.UUID) string {
	return fmt.Sprintf("designs/%s/", projectID)
}

func buildStorageKey(projectID, id uuid.UUID, filename string) string {
	return fmt.Sprintf("%s%s/%s", StoragePrefix(projectID), id, filename)
}
