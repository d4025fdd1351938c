// Package styles serves the catalog of architectural styles. Each style carries
// a generation prompt that seeds the design form.
package styles

import (
	_ "embed"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// Style is one architectural style. DesignLink opens the design form with Prompt prefilled.
type Style struct {
	ID                       string `yaml:"id" json:"id"`
	Name                     string `yaml:"name" json:"name"`
	Description              string `yaml:"description" json:"description"`
	FloorPlanCharacteristics string `yaml:"floor_plan_characteristics" json:"floor_plan_characteristics"`
	Prompt                   string `yaml:"prompt" json:"prompt"`
	Image                    string `yaml:"image" json:"image"`
	DesignLink               string `yaml:"-" json:"design_link"`
}

// Catalog is an ordered, read-only set of styles.
type Catalog struct {
	styles []Style
	byID   map[string]int
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(stylesYAML)
})

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Parse reads a YAML list of styles. IDs must be present and unique, and every style needs a prompt.
func Parse(data []byte) (*Catalog, error) {
	var styles []Style
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("parse styles: %w", err)
	}

	c := &Catalog{
		styles: styles,
		byID:   make(map[string]int, len(styles)),
	}
	for i := range c.styles {
		s := &c.styles[i]
		if s.ID == "" {
			return nil, fmt.Errorf("style %d: missing id", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("style %q: duplicate id", s.ID)
		}
		if strings.TrimSpace(s.Prompt) == "" {
			return nil, fmt.Errorf("style %q: missing prompt", s.ID)
		}
		s.DesignLink = DesignLink(*s)
		c.byID[s.ID] = i
	}
	return c, nil
}

// All returns every style in catalog order.
func (c *Catalog) All() []Style {
	return slices.Clone(c.styles)
}

// Search returns styles whose name or description contains term, case-insensitively.
// An empty term matches everything.
func (c *Catalog) Search(term string) []Style {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.All()
	}

	out := make([]Style, 0)
	for _, s := range c.styles {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Description), term) {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the style with the given id.
func (c *Catalog) Find(id string) (Style, error) {
	i, ok := c.byID[id]
	if !ok {
		return Style{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.styles[i], nil
}

// DesignLink returns the design form path with the style's prompt as the prompt query value.
func DesignLink(s Style) string {
	return "/design?prompt=" + strings.ReplaceAll(url.QueryEscape(s.Prompt), "+", "%20")
}
