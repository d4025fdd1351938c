// Package handlers provides shared request decoding and response helpers
// for the JSON API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

var (
	// ErrBodyTooLarge reports a request body over the decode limit.
	ErrBodyTooLarge = errors.New("request body too large")
	// ErrMalformedBody reports a body that is not the expected JSON.
	ErrMalformedBody = errors.New("malformed request body")
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as a JSON error body.
// Server errors are logged at error level, client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// Attachment sets the headers of a file download. size <= 0 leaves
// Content-Length unset.
func Attachment(w http.ResponseWriter, contentType, filename string, size int64) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if size > 0 {
		h.Set("Content-Length", strconv.FormatInt(size, 10))
	}
}

// StreamAttachment writes body as a download. Copy failures happen after the
// status is sent, so they are only logged.
func StreamAttachment(w http.ResponseWriter, logger *slog.Logger, contentType, filename string, size int64, body io.Reader) {
	Attachment(w, contentType, filename, size)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		logger.Warn("download interrupted", "filename", filename, "error", err)
	}
}

// DecodeJSON reads r's body into dst. A positive limit caps the body and
// yields ErrBodyTooLarge when exceeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

// PathUUID parses the named path value as a UUID.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("path %s: %w", name, err)
	}
	return id, nil
}
