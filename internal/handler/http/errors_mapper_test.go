package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "auth required", err: service.ErrAuthRequired, want: http.StatusUnauthorized},
		{name: "wrong password", err: fmt.Errorf("sign in: %w", service.ErrInvalidCredentials), want: http.StatusUnauthorized},
		{name: "email not confirmed", err: service.ErrEmailNotConfirmed, want: http.StatusForbidden},
		{name: "already registered", err: service.ErrUserAlreadyExists, want: http.StatusConflict},
		{name: "rule violation", err: validators.ErrTitleRequired, want: http.StatusUnprocessableEntity},
		{name: "broken form", err: fmt.Errorf("%w: eof", ErrInvalidForm), want: http.StatusBadRequest},
		{name: "photo upload", err: service.ErrStorage, want: http.StatusBadGateway},
		{name: "row level security", err: errors.Join(store.ErrStore, adapter.ErrForbidden), want: http.StatusForbidden},
		{name: "rate limited", err: errors.Join(store.ErrStore, adapter.ErrTooManyRequests), want: http.StatusTooManyRequests},
		{name: "not found", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "duplicate", err: store.ErrConflict, want: http.StatusConflict},
		{name: "store down", err: store.ErrStore, want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
