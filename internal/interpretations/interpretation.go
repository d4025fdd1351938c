// Package interpretations analyzes uploaded floor plan images and produces a
// markdown report. The analysis backend is pluggable: a static backend returns a
// fixed sample report, and a Gemini backend asks a vision model.
package interpretations

import (
	"html/template"
	"time"

	"github.com/JaimeStill/stylarch/internal/designs"
)

// ReportFilename is the download name of every interpretation report.
const ReportFilename = "floor-plan-analysis.md"

// ReportContentType is the media type reports are downloaded and stored with.
const ReportContentType = "text/markdown; charset=utf-8"

// Image is an uploaded floor plan.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Report is the outcome of interpreting one image. HTML is the sanitized rendering of Markdown.
type Report struct {
	Markdown   string          `json:"markdown"`
	HTML       template.HTML   `json:"html"`
	Filename   string          `json:"filename"`
	Backend    string          `json:"backend"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
	Design     *designs.Design `json:"design,omitempty"`
}
