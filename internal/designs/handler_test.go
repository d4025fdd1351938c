package designs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/internal/designs"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

type mockSystem struct {
	listFn     func(ctx context.Context, page pagination.PageRequest, filters designs.Filters) (*pagination.PageResult[designs.Design], error)
	findFn     func(ctx context.Context, id uuid.UUID) (*designs.Design, error)
	createFn   func(ctx context.Context, cmd designs.CreateCommand) (*designs.Design, error)
	downloadFn func(ctx context.Context, id uuid.UUID) (*designs.Design, *storage.BlobResult, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	exportFn   func(ctx context.Context, ids []uuid.UUID) ([]byte, error)
}

func (m *mockSystem) Handler(maxUploadSize int64) *designs.Handler {
	return designs.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, maxUploadSize)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters designs.Filters) (*pagination.PageResult[designs.Design], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*designs.Design, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd designs.CreateCommand) (*designs.Design, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Download(ctx context.Context, id uuid.UUID) (*designs.Design, *storage.BlobResult, error) {
	return m.downloadFn(ctx, id)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockSystem) ExportPDF(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	return m.exportFn(ctx, ids)
}

func setupMux(h *designs.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

var (
	designID  = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	projectID = uuid.MustParse("7b0c54f2-5d1e-4f8b-9a51-7c2f0c1d9e01")
)

func sampleDesign() designs.Design {
	return designs.Design{
		ID:          designID,
		ProjectID:   projectID,
		ProjectName: "Modern Beach House",
		Kind:        designs.KindImage,
		Prompt:      "A spacious villa floor plan",
		Filename:    "floor-plan.png",
		ContentType: "image/png",
		SizeBytes:   4,
		StorageKey:  "designs/7b0c54f2-5d1e-4f8b-9a51-7c2f0c1d9e01/550e8400-e29b-41d4-a716-446655440000/floor-plan.png",
		CreatedAt:   time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandlerList(t *testing.T) {
	var captured designs.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, f designs.Filters) (*pagination.PageResult[designs.Design], error) {
			captured = f
			result := pagination.NewPageResult([]designs.Design{sampleDesign()}, 1, 1, 20)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/designs?project_id="+projectID.String(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.ProjectID == nil || *captured.ProjectID != projectID {
		t.Errorf("ProjectID filter = %v, want %v", captured.ProjectID, projectID)
	}
}

func TestHandlerFind(t *testing.T) {
	sys := &mockSystem{
		findFn: func(_ context.Context, id uuid.UUID) (*designs.Design, error) {
			if id != designID {
				return nil, designs.ErrNotFound
			}
			d := sampleDesign()
			return &d, nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	tests := []struct {
		name string
		path string
		want int
	}{
		{"found", "/designs/" + designID.String(), http.StatusOK},
		{"missing", "/designs/" + uuid.NewString(), http.StatusNotFound},
		{"bad id", "/designs/nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlerDownload(t *testing.T) {
	sys := &mockSystem{
		downloadFn: func(_ context.Context, _ uuid.UUID) (*designs.Design, *storage.BlobResult, error) {
			d := sampleDesign()
			return &d, &storage.BlobResult{
				Body:          io.NopCloser(strings.NewReader("png!")),
				ContentType:   "image/png",
				ContentLength: 4,
			}, nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/designs/"+designID.String()+"/download", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="floor-plan.png"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if rec.Body.String() != "png!" {
		t.Errorf("body = %q, want png!", rec.Body.String())
	}
}

func TestHandlerSave(t *testing.T) {
	var captured designs.CreateCommand
	sys := &mockSystem{
		createFn: func(_ context.Context, cmd designs.CreateCommand) (*designs.Design, error) {
			captured = cmd
			d := sampleDesign()
			return &d, nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	t.Run("stores decoded image", func(t *testing.T) {
		body, _ := json.Marshal(designs.SaveRequest{
			ProjectID: projectID,
			Prompt:    "A spacious villa floor plan",
			Image:     "data:image/png;base64,cG5nIQ==",
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/designs", bytes.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
		}
		if captured.Kind != designs.KindImage {
			t.Errorf("kind = %q, want image", captured.Kind)
		}
		if captured.ContentType != "image/png" {
			t.Errorf("content type = %q, want image/png", captured.ContentType)
		}
		if string(captured.Data) != "png!" {
			t.Errorf("data = %q, want png!", captured.Data)
		}
	})

	t.Run("rejects non-image data", func(t *testing.T) {
		body := `{"project_id":"` + projectID.String() + `","image":"data:text/plain;base64,aGk="}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/designs", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		body := `{"image":"data:image/png;base64,` + strings.Repeat("A", 2048) + `"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/designs", strings.NewReader(body)))
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", rec.Code)
		}
	})
}

func TestHandlerExport(t *testing.T) {
	var captured []uuid.UUID
	sys := &mockSystem{
		exportFn: func(_ context.Context, ids []uuid.UUID) ([]byte, error) {
			captured = ids
			if len(ids) == 0 {
				return nil, designs.ErrInvalidDesign
			}
			return []byte("%PDF-1.7"), nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	t.Run("returns pdf", func(t *testing.T) {
		body := `{"ids":["` + designID.String() + `"]}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/designs/export", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Content-Type = %q", got)
		}
		if len(captured) != 1 || captured[0] != designID {
			t.Errorf("ids = %v", captured)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/designs/export", strings.NewReader(`{"ids":[]}`)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			if id != designID {
				return designs.ErrNotFound
			}
			return nil
		},
	}
	mux := setupMux(sys.Handler(1024))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/designs/"+designID.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/designs/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
