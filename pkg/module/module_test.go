package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/stylarch/pkg/module"
)

func mustNew(t *testing.T, prefix string, h http.Handler) *module.Module {
	t.Helper()
	m, err := module.New(prefix, h)
	if err != nil {
		t.Fatalf("New(%q): %v", prefix, err)
	}
	return m
}

func echo(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name + " " + r.URL.Path))
	})
}

func TestNewPrefixValidation(t *testing.T) {
	tests := []struct {
		prefix  string
		wantErr bool
	}{
		{"/api", false},
		{"/app", false},
		{"/scalar", false},
		{"", true},
		{"api", true},
		{"/", true},
		{"/api/v1", true},
		{"/api/", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			_, err := module.New(tt.prefix, http.NewServeMux())
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.prefix, err, tt.wantErr)
			}
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	m := mustNew(t, "/api", echo("api"))

	tests := []struct {
		path string
		want string
	}{
		{"/api/projects", "api /projects"},
		{"/api", "api /"},
		{"/api/storage/download/designs/a.png", "api /storage/download/designs/a.png"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		m.Serve(rec, req)

		if got := rec.Body.String(); got != tt.want {
			t.Errorf("Serve(%s): got %q, want %q", tt.path, got, tt.want)
		}
		if req.URL.Path != tt.path {
			t.Errorf("original request path modified: %s", req.URL.Path)
		}
	}
}

func TestModuleMiddleware(t *testing.T) {
	m := mustNew(t, "/app", echo("app"))

	var order []string
	for _, name := range []string{"outer", "inner"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	m.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app", nil))

	if diff := cmp.Diff([]string{"outer", "inner"}, order); diff != "" {
		t.Errorf("middleware order mismatch (-want +got):\n%s", diff)
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	for _, prefix := range []string{"/api", "/app"} {
		if err := router.Mount(mustNew(t, prefix, echo(prefix[1:]))); err != nil {
			t.Fatalf("Mount(%s): %v", prefix, err)
		}
	}
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"api module", "/api/styles", http.StatusOK, "api /styles"},
		{"app module root", "/app/", http.StatusOK, "app /"},
		{"trailing slash", "/app/design/", http.StatusOK, "app /design"},
		{"root handler", "/healthz", http.StatusOK, "ok"},
		{"similar prefix", "/apps", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouterMountDuplicate(t *testing.T) {
	router := module.NewRouter()

	if err := router.Mount(mustNew(t, "/api", echo("a"))); err != nil {
		t.Fatalf("first mount: %v", err)
	}
	if err := router.Mount(mustNew(t, "/api", echo("b"))); err == nil {
		t.Error("expected error mounting duplicate prefix")
	}

	if diff := cmp.Diff([]string{"/api"}, router.Prefixes()); diff != "" {
		t.Errorf("prefixes mismatch (-want +got):\n%s", diff)
	}
}
