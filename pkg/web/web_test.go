package web_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/stylarch/pkg/web"
)

var (
	homeView   = web.ViewDef{Route: "/{$}", Template: "home.html", Title: "Home", Nav: "home"}
	aboutView  = web.ViewDef{Route: "/about", Template: "about.html", Title: "About", Nav: "about"}
	brokenView = web.ViewDef{Template: "broken.html", Title: "Broken"}
)

var templates = fstest.MapFS{
	"layouts/base.html": {Data: []byte(
		`{{ define "base.html" }}<title>{{ .Title }}</title><nav data-active="{{ .Nav }}"><a href="{{ .BasePath }}/about">About</a></nav>{{ template "content" . }}{{ end }}`,
	)},
	"views/home.html":   {Data: []byte(`{{ define "content" }}<h1>{{ shout .Data }}</h1>{{ end }}`)},
	"views/about.html":  {Data: []byte(`{{ define "content" }}<p>about</p>{{ end }}`)},
	"views/broken.html": {Data: []byte(`{{ define "content" }}{{ .Data.Missing }}{{ end }}`)},
	"static/site.css":   {Data: []byte("body{margin:0}")},
}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(web.TemplateConfig{
		LayoutFS:   templates,
		LayoutGlob: "layouts/*.html",
		ViewFS:     templates,
		ViewSubdir: "views",
		BasePath:   "/app",
		Funcs:      template.FuncMap{"shout": func(v any) string { return strings.ToUpper(v.(string)) }},
		Views:      []web.ViewDef{homeView, aboutView, brokenView},
	})
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	return ts
}

func TestTemplateSetPage(t *testing.T) {
	ts := newTemplateSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Page(rec, "base.html", homeView, http.StatusCreated, "hello"); err != nil {
		t.Fatalf("Page: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{"<title>Home</title>", `data-active="home"`, `href="/app/about"`, "<h1>HELLO</h1>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestTemplateSetPageFailures(t *testing.T) {
	ts := newTemplateSet(t)

	t.Run("unknown view", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := ts.Page(rec, "base.html", web.ViewDef{Template: "missing.html"}, http.StatusOK, nil)
		if err == nil {
			t.Fatal("expected error for unregistered view")
		}
	})

	t.Run("execution error writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := ts.Page(rec, "base.html", brokenView, http.StatusOK, 42)
		if err == nil {
			t.Fatal("expected execution error")
		}
		if rec.Body.Len() != 0 {
			t.Errorf("partial page written: %q", rec.Body.String())
		}
	})
}

func TestNewTemplateSetMissingView(t *testing.T) {
	_, err := web.NewTemplateSet(web.TemplateConfig{
		LayoutFS:   templates,
		LayoutGlob: "layouts/*.html",
		ViewFS:     templates,
		ViewSubdir: "views",
		Views:      []web.ViewDef{{Template: "nope.html"}},
	})
	if err == nil {
		t.Error("expected error for missing view template")
	}
}

func TestRouter(t *testing.T) {
	ts := newTemplateSet(t)
	r := web.NewRouter(ts.ErrorHandler("base.html", aboutView, http.StatusNotFound))

	r.Get(homeView.Route, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/submit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Handle("GET /about", ts.PageHandler("base.html", aboutView))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"get", http.MethodGet, "/", http.StatusOK},
		{"post", http.MethodPost, "/submit", http.StatusAccepted},
		{"page handler", http.MethodGet, "/about", http.StatusOK},
		{"unmatched", http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRouterWithoutNotFound(t *testing.T) {
	r := web.NewRouter(nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestAssets(t *testing.T) {
	h, err := web.Assets(templates, "static", "/static/")
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "body{margin:0}" {
		t.Errorf("body: got %q", rec.Body.String())
	}
	if cc := rec.Header().Get("Cache-Control"); cc == "" {
		t.Error("Cache-Control header not set")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing asset: got %d, want 404", rec.Code)
	}
}
