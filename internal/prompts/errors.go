package prompts

import (
	"errors"
	"net/http"
)

// ErrInvalidForm is wrapped with the offending field by Validate.
var ErrInvalidForm = errors.New("invalid design form")

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidForm) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
