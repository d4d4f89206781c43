package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
)

// errorStatus is ordered: the first match wins, so specific sentinels come
// before the store wrappers they are joined with.
var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrAuthRequired, http.StatusUnauthorized},
	{service.ErrSessionExpired, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrEmailNotConfirmed, http.StatusForbidden},
	{service.ErrUserAlreadyExists, http.StatusConflict},

	{validators.ErrValidation, http.StatusUnprocessableEntity},
	{ErrInvalidForm, http.StatusBadRequest},

	{service.ErrStorage, http.StatusBadGateway},

	{adapter.ErrForbidden, http.StatusForbidden},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrTooManyRequests, http.StatusTooManyRequests},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrConflict, http.StatusConflict},
	{store.ErrStore, http.StatusBadGateway},
}

// statusFromError picks the status a form page is re-rendered with.
func statusFromError(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
