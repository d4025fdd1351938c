package designs

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/repository"
)

// Domain errors for design operations.
var (
	ErrNotFound        = errors.New("design not found")
	ErrDuplicate       = errors.New("design already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidDesign   = errors.New("invalid design")
	ErrNotImage        = errors.New("design is not an image")
	ErrTooLarge        = errors.New("design exceeds maximum upload size")
)

var dbErrors = repository.Errors{
	NotFound:      ErrNotFound,
	Duplicate:     ErrDuplicate,
	MissingParent: ErrProjectNotFound,
	Invalid:       ErrInvalidDesign,
}

// MapHTTPStatus maps design domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidDesign), errors.Is(err, ErrNotImage):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
