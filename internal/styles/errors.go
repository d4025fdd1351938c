package styles

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates no style has the requested id.
var ErrNotFound = errors.New("style not found")

// MapHTTPStatus maps style errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
