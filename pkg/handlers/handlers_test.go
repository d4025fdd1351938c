package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]string{"name": "villa"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["name"] != "villa" {
		t.Errorf("name: got %q, want villa", body["name"])
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, status := range []int{http.StatusBadRequest, http.StatusBadGateway} {
		rec := httptest.NewRecorder()
		handlers.RespondError(rec, logger, status, errors.New("boom"))

		if rec.Code != status {
			t.Errorf("status: got %d, want %d", rec.Code, status)
		}

		var body handlers.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != "boom" {
			t.Errorf("error: got %q, want boom", body.Error)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	type cmd struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr error
	}{
		{name: "valid", body: `{"name":"villa"}`},
		{name: "malformed", body: `{"name":`, wantErr: handlers.ErrMalformedBody},
		{name: "over limit", body: `{"name":"a very long villa name"}`, limit: 8, wantErr: handlers.ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got cmd
			err := handlers.DecodeJSON(httptest.NewRecorder(), req, tt.limit, &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error: got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON: %v", err)
			}
			if got.Name != "villa" {
				t.Errorf("name: got %q, want villa", got.Name)
			}
		})
	}
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("id", id.String())
	if got, err := handlers.PathUUID(req, "id"); err != nil || got != id {
		t.Errorf("PathUUID: got %v, %v", got, err)
	}

	req.SetPathValue("id", "not-a-uuid")
	if _, err := handlers.PathUUID(req, "id"); err == nil {
		t.Error("expected parse error")
	}
}

func TestStreamAttachment(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.StreamAttachment(rec, logger, "image/png", "plan.png", 4, strings.NewReader("\x89PNG"))

	want := map[string]string{
		"Content-Type":        "image/png",
		"Content-Disposition": `attachment; filename="plan.png"`,
		"Content-Length":      "4",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s: got %q, want %q", k, got, v)
		}
	}
	if rec.Body.Len() != 4 {
		t.Errorf("body: got %d bytes, want 4", rec.Body.Len())
	}
}
