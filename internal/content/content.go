// Package content holds the static informational copy shown across the app:
// the landing hero, quick-access tiles, quick guides, FAQs, and support contact.
package content

import (
	_ "embed"
	"fmt"
	"html/template"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/stylarch/pkg/render"
)

//go:embed content.yaml
var contentYAML []byte

type Hero struct {
	Title   string `yaml:"title" json:"title"`
	Tagline string `yaml:"tagline" json:"tagline"`
}

// Tile is a quick-access shortcut. Path is relative to the app root.
type Tile struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Path        string `yaml:"path" json:"path"`
}

// Guide is a short how-to with a markdown body. HTML is rendered at load time.
type Guide struct {
	Title string        `yaml:"title" json:"title"`
	Body  string        `yaml:"body" json:"body"`
	HTML  template.HTML `yaml:"-" json:"html"`
}

type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

type Contact struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
	Note  string `yaml:"note" json:"note"`
}

// Content is the full set of static copy.
type Content struct {
	Hero        Hero    `yaml:"hero" json:"hero"`
	QuickAccess []Tile  `yaml:"quick_access" json:"quick_access"`
	Guides      []Guide `yaml:"guides" json:"guides"`
	FAQs        []FAQ   `yaml:"faqs" json:"faqs"`
	Contact     Contact `yaml:"contact" json:"contact"`
}

var defaultContent = sync.OnceValues(func() (*Content, error) {
	return Parse(contentYAML)
})

// Default returns the embedded content.
func Default() (*Content, error) {
	return defaultContent()
}

// Parse reads content YAML and renders each guide body to sanitized HTML.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	for i := range c.Guides {
		html, err := render.Markdown(c.Guides[i].Body)
		if err != nil {
			return nil, fmt.Errorf("guide %q: %w", c.Guides[i].Title, err)
		}
		c.Guides[i].HTML = html
	}

	return &c, nil
}
