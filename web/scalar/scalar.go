// Package scalar serves the Scalar API reference page for the JSON API.
package scalar

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/module"
)

//go:embed index.html
var pageFS embed.FS

// NewModule mounts the reference page at basePath. specURL is the
// absolute path the page fetches the OpenAPI document from.
func NewModule(basePath, specURL string) (*module.Module, error) {
	page, err := render(specURL)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(page)
	})
	return module.New(basePath, mux)
}

// render executes the page once; specURL is fixed for the process lifetime.
func render(specURL string) ([]byte, error) {
	tmpl, err := template.ParseFS(pageFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse scalar page: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ SpecURL string }{specURL}); err != nil {
		return nil, fmt.Errorf("render scalar page: %w", err)
	}
	return buf.Bytes(), nil
}
