// Package render converts markdown to sanitized HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdOnce sync.Once
	md     goldmark.Markdown

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Markdown renders src as HTML and strips anything outside the user-generated
// content policy. The result is safe to embed in templates.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := converter().Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(sanitizer().SanitizeBytes(buf.Bytes())), nil
}

// MustMarkdown is Markdown for trusted, embedded sources. Panics on failure.
func MustMarkdown(src string) template.HTML {
	out, err := Markdown(src)
	if err != nil {
		panic(err)
	}
	return out
}

func converter() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return md
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("align").OnElements("th", "td")
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}
