package interpretations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/internal/designs"
	"github.com/JaimeStill/stylarch/internal/interpretations"
	"github.com/JaimeStill/stylarch/pkg/handlers"
	"github.com/JaimeStill/stylarch/pkg/middleware"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeLibrary struct {
	captured designs.CreateCommand
	calls    int
	err      error
}

func (f *fakeLibrary) Create(_ context.Context, cmd designs.CreateCommand) (*designs.Design, error) {
	f.calls++
	f.captured = cmd
	if f.err != nil {
		return nil, f.err
	}
	return &designs.Design{
		ID:          uuid.New(),
		ProjectID:   cmd.ProjectID,
		Kind:        cmd.Kind,
		Filename:    cmd.Filename,
		ContentType: cmd.ContentType,
		SizeBytes:   int64(len(cmd.Data)),
	}, nil
}

type failingInterpreter struct{}

func (failingInterpreter) Name() string { return "failing" }

func (failingInterpreter) Interpret(context.Context, interpretations.Image) (string, error) {
	return "", errors.New("model unavailable")
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticInterpreter(t *testing.T) {
	t.Run("returns sample report", func(t *testing.T) {
		md, err := interpretations.NewStatic(0).Interpret(context.Background(), interpretations.Image{})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		if !strings.HasPrefix(md, "## Floor Plan Analysis Report") {
			t.Errorf("report starts with %q", md[:min(len(md), 40)])
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := interpretations.NewStatic(time.Hour).Interpret(ctx, interpretations.Image{})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("error = %v, want DeadlineExceeded", err)
		}
	})
}

func TestInterpret(t *testing.T) {
	sys := interpretations.New(interpretations.NewStatic(0), &fakeLibrary{}, discard())

	t.Run("renders report", func(t *testing.T) {
		report, err := sys.Interpret(context.Background(), interpretations.Image{ContentType: "image/png", Data: pngHeader})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		if report.Filename != "floor-plan-analysis.md" {
			t.Errorf("filename = %q", report.Filename)
		}
		if report.Backend != "static" {
			t.Errorf("backend = %q, want static", report.Backend)
		}
		if !strings.Contains(string(report.HTML), "<h2>Floor Plan Analysis Report</h2>") {
			t.Errorf("html missing heading: %s", report.HTML)
		}
	})

	tests := []struct {
		name    string
		sys     interpretations.System
		img     interpretations.Image
		wantErr error
	}{
		{"empty upload", sys, interpretations.Image{ContentType: "image/png"}, interpretations.ErrInvalidImage},
		{"pdf upload", sys, interpretations.Image{ContentType: "application/pdf", Data: []byte("%PDF")}, interpretations.ErrInvalidImage},
		{"gif upload", sys, interpretations.Image{ContentType: "image/gif", Data: []byte("GIF89a")}, interpretations.ErrInvalidImage},
		{
			"backend failure",
			interpretations.New(failingInterpreter{}, nil, discard()),
			interpretations.Image{ContentType: "image/png", Data: pngHeader},
			interpretations.ErrAnalysisFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sys.Interpret(context.Background(), tt.img); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{interpretations.ErrInvalidImage, http.StatusBadRequest},
		{interpretations.ErrInvalidProjectID, http.StatusBadRequest},
		{interpretations.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{interpretations.ErrAnalysisFailed, http.StatusBadGateway},
		{designs.ErrProjectNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := interpretations.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func multipartBody(t *testing.T, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if data != nil {
		fw, err := mw.CreateFormFile("file", "plan.png")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write(data)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func setupMux(h *interpretations.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerInterpret(t *testing.T) {
	lib := &fakeLibrary{}
	mux := setupMux(interpretations.New(interpretations.NewStatic(0), lib, discard()).Handler(1 << 20))

	t.Run("returns report", func(t *testing.T) {
		body, ct := multipartBody(t, pngHeader, nil)
		req := httptest.NewRequest("POST", "/interpretations", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
		}

		var report interpretations.Report
		if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if report.Design != nil {
			t.Error("design set without project_id")
		}
	})

	t.Run("saves to project", func(t *testing.T) {
		pid := uuid.New()
		body, ct := multipartBody(t, pngHeader, map[string]string{"project_id": pid.String()})
		req := httptest.NewRequest("POST", "/interpretations", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
		}
		if lib.captured.ProjectID != pid {
			t.Errorf("project_id = %v, want %v", lib.captured.ProjectID, pid)
		}
		if lib.captured.Kind != designs.KindReport {
			t.Errorf("kind = %q, want report", lib.captured.Kind)
		}
		if lib.captured.Filename != "floor-plan-analysis.md" {
			t.Errorf("filename = %q", lib.captured.Filename)
		}
	})

	t.Run("malformed project_id", func(t *testing.T) {
		body, ct := multipartBody(t, pngHeader, map[string]string{"project_id": "not-a-uuid"})
		req := httptest.NewRequest("POST", "/interpretations", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		var resp handlers.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(resp.Error, "invalid project_id") {
			t.Errorf("error = %q, want invalid project_id prefix", resp.Error)
		}
	})

	t.Run("rejects text upload", func(t *testing.T) {
		body, ct := multipartBody(t, []byte("just some notes"), nil)
		req := httptest.NewRequest("POST", "/interpretations", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		body, ct := multipartBody(t, nil, map[string]string{"note": "x"})
		req := httptest.NewRequest("POST", "/interpretations", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

type stubVerifier struct {
	err error
}

func (v stubVerifier) Verify(context.Context, string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return "user-1", nil
}

func TestHandlerInterpretSaveAuth(t *testing.T) {
	denied := stubVerifier{err: middleware.ErrInvalidToken}

	tests := []struct {
		name      string
		verifier  middleware.TokenVerifier
		token     string
		projectID bool
		want      int
		wantSaves int
	}{
		{name: "save without token", verifier: denied, projectID: true, want: http.StatusUnauthorized},
		{name: "save with rejected token", verifier: denied, token: "forged", projectID: true, want: http.StatusUnauthorized},
		{name: "save with valid token", verifier: stubVerifier{}, token: "good", projectID: true, want: http.StatusOK, wantSaves: 1},
		{name: "analysis stays open", verifier: denied, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := &fakeLibrary{}
			h := interpretations.New(interpretations.NewStatic(0), lib, discard()).
				Handler(1 << 20).
				WithSaveAuth(middleware.Auth(tt.verifier, discard()))
			mux := setupMux(h)

			fields := map[string]string{}
			if tt.projectID {
				fields["project_id"] = uuid.NewString()
			}
			body, ct := multipartBody(t, pngHeader, fields)
			req := httptest.NewRequest("POST", "/interpretations", body)
			req.Header.Set("Content-Type", ct)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if lib.calls != tt.wantSaves {
				t.Errorf("library creates: got %d, want %d", lib.calls, tt.wantSaves)
			}
		})
	}
}

func TestHandlerInterpretTooLarge(t *testing.T) {
	mux := setupMux(interpretations.New(interpretations.NewStatic(0), &fakeLibrary{}, discard()).Handler(64))

	body, ct := multipartBody(t, append(pngHeader, bytes.Repeat([]byte{0}, 4096)...), nil)
	req := httptest.NewRequest("POST", "/interpretations", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandlerReport(t *testing.T) {
	mux := setupMux(interpretations.New(interpretations.NewStatic(0), &fakeLibrary{}, discard()).Handler(1 << 20))

	body, ct := multipartBody(t, pngHeader, nil)
	req := httptest.NewRequest("POST", "/interpretations/report", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="floor-plan-analysis.md"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "## Floor Plan Analysis Report") {
		t.Errorf("body does not start with report heading")
	}
}
