package interpretations

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/stylarch/internal/designs"
)

// Domain errors for interpretation operations.
var (
	ErrInvalidImage     = errors.New("invalid floor plan image")
	ErrInvalidProjectID = errors.New("invalid project_id")
	ErrTooLarge         = errors.New("image exceeds maximum upload size")
	ErrAnalysisFailed   = errors.New("floor plan analysis failed")
)

// MapHTTPStatus maps interpretation errors to HTTP status codes.
// Errors from saving a report to a project fall through to the designs mapping.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidImage), errors.Is(err, ErrInvalidProjectID):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrAnalysisFailed):
		return http.StatusBadGateway
	}
	return designs.MapHTTPStatus(err)
}
