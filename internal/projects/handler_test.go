package projects_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/internal/projects"
	"github.com/JaimeStill/stylarch/pkg/pagination"
)

type mockSystem struct {
	listFn   func(ctx context.Context, page pagination.PageRequest, filters projects.Filters) (*pagination.PageResult[projects.Project], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*projects.Project, error)
	createFn func(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error)
	updateFn func(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	shareFn  func(ctx context.Context, id uuid.UUID) (*projects.ShareLink, error)
}

func (m *mockSystem) Handler() *projects.Handler {
	return projects.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters projects.Filters) (*pagination.PageResult[projects.Project], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Update(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	return m.updateFn(ctx, id, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockSystem) Share(ctx context.Context, id uuid.UUID) (*projects.ShareLink, error) {
	return m.shareFn(ctx, id)
}

func setupMux(h *projects.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

var beachHouseID = uuid.MustParse("1e0d7d3c-7a52-4c4e-9b40-8f0c3a1b2d01")

func beachHouse() projects.Project {
	return projects.Project{
		ID:        beachHouseID,
		Name:      "Modern Beach House",
		Type:      projects.TypeResidential,
		Status:    projects.StatusInProgress,
		Thumbnail: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400&auto=format",
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestHandlerList(t *testing.T) {
	var gotPage pagination.PageRequest
	var gotFilters projects.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, page pagination.PageRequest, f projects.Filters) (*pagination.PageResult[projects.Project], error) {
			gotPage, gotFilters = page, f
			result := pagination.NewPageResult([]projects.Project{beachHouse()}, 1, 1, 20)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/projects?search=beach&type=Residential", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotPage.Search == nil || *gotPage.Search != "beach" {
		t.Errorf("search = %v, want beach", gotPage.Search)
	}
	if gotFilters.Type == nil || *gotFilters.Type != "Residential" {
		t.Errorf("type = %v, want Residential", gotFilters.Type)
	}

	var result pagination.PageResult[projects.Project]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]projects.Project{beachHouse()}, result.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerCreate(t *testing.T) {
	sys := &mockSystem{
		createFn: func(_ context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
			if cmd.Name == "" {
				return nil, projects.ErrInvalidProject
			}
			if cmd.Name == "Modern Beach House" {
				return nil, projects.ErrDuplicate
			}
			p := beachHouse()
			p.Name = cmd.Name
			return &p, nil
		},
	}
	mux := setupMux(sys.Handler())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"name":"Lake Cabin","type":"Residential"}`, http.StatusCreated},
		{"duplicate", `{"name":"Modern Beach House","type":"Residential"}`, http.StatusConflict},
		{"missing name", `{"type":"Residential"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("POST", "/projects", strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlerUpdate(t *testing.T) {
	var captured projects.UpdateCommand
	sys := &mockSystem{
		updateFn: func(_ context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
			if id != beachHouseID {
				return nil, projects.ErrNotFound
			}
			captured = cmd
			p := beachHouse()
			p.Status = *cmd.Status
			return &p, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("PATCH", "/projects/"+beachHouseID.String(), strings.NewReader(`{"status":"Completed"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.Name != nil {
		t.Errorf("name = %v, want nil", *captured.Name)
	}
	if captured.Status == nil || *captured.Status != projects.StatusCompleted {
		t.Errorf("status = %v, want Completed", captured.Status)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("PATCH", "/projects/"+uuid.NewString(), strings.NewReader(`{"status":"Completed"}`)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerShare(t *testing.T) {
	sys := &mockSystem{
		shareFn: func(_ context.Context, id uuid.UUID) (*projects.ShareLink, error) {
			return &projects.ShareLink{URL: projects.ShareURL("https://stylarch.app", beachHouse().Name)}, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/projects/"+beachHouseID.String()+"/share", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var link projects.ShareLink
	if err := json.NewDecoder(rec.Body).Decode(&link); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if link.URL != "https://stylarch.app/project/modern-beach-house" {
		t.Errorf("url = %q", link.URL)
	}
}

func TestHandlerDelete(t *testing.T) {
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id uuid.UUID) error { return nil },
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/projects/"+beachHouseID.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/projects/bad-id", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
