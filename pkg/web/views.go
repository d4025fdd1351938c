// Package web renders server-side pages from Go templates and serves
// embedded static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a page with its route, template file, title, and the
// navigation entry it highlights.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Nav      string
}

// ViewData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Nav      string
	BasePath string
	Data     any
}

// TemplateConfig describes where a TemplateSet finds its layouts and views.
type TemplateConfig struct {
	LayoutFS   fs.FS
	LayoutGlob string
	ViewFS     fs.FS
	ViewSubdir string
	BasePath   string
	Funcs      template.FuncMap
	Views      []ViewDef
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts once and clones them for each view.
// A missing or malformed template fails here rather than on first request.
func NewTemplateSet(cfg TemplateConfig) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(cfg.Funcs).ParseFS(cfg.LayoutFS, cfg.LayoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS := cfg.ViewFS
	if cfg.ViewSubdir != "" {
		if viewFS, err = fs.Sub(cfg.ViewFS, cfg.ViewSubdir); err != nil {
			return nil, err
		}
	}

	views := make(map[string]*template.Template, len(cfg.Views))
	for _, v := range cfg.Views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewFS, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		views[v.Template] = t
	}

	return &TemplateSet{
		views:    views,
		basePath: cfg.BasePath,
	}, nil
}

// BasePath returns the URL prefix templates use for links.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Page renders view with data and the given status. The template executes into
// a buffer first so a failed render never leaves a partial page on the wire.
func (ts *TemplateSet) Page(w http.ResponseWriter, layout string, view ViewDef, status int, data any) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, layout, ViewData{
		Title:    view.Title,
		Nav:      view.Nav,
		BasePath: ts.basePath,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// PageHandler returns an HTTP handler that renders the given view without data.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Page(w, layout, view, http.StatusOK, nil); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns an HTTP handler that renders view with the given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Page(w, layout, view, status, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
