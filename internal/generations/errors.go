package generations

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/prompts"
)

// Domain errors for generation operations.
var (
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	ErrNoImage     = errors.New("generation returned no image")
	ErrUpstream    = errors.New("generation service failed")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyPrompt), errors.Is(err, prompts.ErrInvalidForm):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoImage), errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
