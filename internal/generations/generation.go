// Package generations turns a design form into floor plan images by sending
// the assembled prompt to the hosted generation model, once per floor. Each
// floor after the first gets its own level fragment appended to the prompt.
package generations

import (
	"time"

	"github.com/JaimeStill/stylarch/pkg/gradio"
)

// Image is one generated floor plan. Floor is 1-based.
type Image struct {
	Floor       int    `json:"floor"`
	Prompt      string `json:"prompt"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// DataURI encodes the image for inline display.
func (i Image) DataURI() string {
	return gradio.Image{ContentType: i.ContentType, Data: i.Data}.DataURI()
}

// Result is the outcome of a generation request.
type Result struct {
	Prompt      string    `json:"prompt"`
	Images      []Image   `json:"images"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ImageResponse is the wire form of an Image.
type ImageResponse struct {
	Floor       int    `json:"floor"`
	Prompt      string `json:"prompt"`
	ContentType string `json:"content_type"`
	DataURI     string `json:"data_uri"`
}

// Response is the wire form of a Result.
type Response struct {
	Prompt      string          `json:"prompt"`
	Images      []ImageResponse `json:"images"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// NewResponse converts a Result to its wire form.
func NewResponse(r *Result) Response {
	images := make([]ImageResponse, len(r.Images))
	for i, img := range r.Images {
		images[i] = ImageResponse{
			Floor:       img.Floor,
			Prompt:      img.Prompt,
			ContentType: img.ContentType,
			DataURI:     img.DataURI(),
		}
	}
	return Response{
		Prompt:      r.Prompt,
		Images:      images,
		GeneratedAt: r.GeneratedAt,
	}
}
