package projects

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/stylarch/pkg/repository"
)

// Domain errors for project operations.
var (
	ErrNotFound       = errors.New("project not found")
	ErrDuplicate      = errors.New("project name already exists")
	ErrInvalidProject = errors.New("invalid project")
)

var dbErrors = repository.Errors{
	NotFound:  ErrNotFound,
	Duplicate: ErrDuplicate,
	Invalid:   ErrInvalidProject,
}

// MapHTTPStatus maps project domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidProject) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
