package storage

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("blob not found")
	ErrEmptyKey       = errors.New("storage key must not be empty")
	ErrInvalidKey     = errors.New("storage key must not contain .. segments")
	ErrInvalidListing = errors.New("invalid listing request")
)

var statuses = []struct {
	err    error
	status int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrEmptyKey, http.StatusBadRequest},
	{ErrInvalidKey, http.StatusBadRequest},
	{ErrInvalidListing, http.StatusBadRequest},
}

// MapHTTPStatus returns the response status for a storage error. Azure
// failures and anything unrecognized map to 500.
func MapHTTPStatus(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}
