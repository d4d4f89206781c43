// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
)

// mapAuthError translates an auth provider error into a service error.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	msg := backendMessage(err)

	switch {
	case strings.EqualFold(msg, app.MsgInvalidLoginCredentials):
		return ErrInvalidCredentials
	case strings.EqualFold(msg, app.MsgEmailNotConfirmed):
		return ErrEmailNotConfirmed
	case strings.EqualFold(msg, app.MsgUserAlreadyRegistered):
		return ErrUserAlreadyExists
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrSessionExpired
	}

	return err
}

// sentinelPrefixes are stripped from wrapped error texts so only the
// backend's own message remains.
var sentinelPrefixes = []error{
	store.ErrStore, store.ErrConflict, store.ErrNotFound,
	adapter.ErrBadRequest, adapter.ErrUnauthorized, adapter.ErrForbidden,
	adapter.ErrNotFound, adapter.ErrConflict, adapter.ErrUnprocessable,
	adapter.ErrTooManyRequests, adapter.ErrInternalServerError,
	adapter.ErrBadGateway, adapter.ErrUnavailable,
}

// backendMessage extracts the message from an error of the form
// "store error: conflict: <message>".
func backendMessage(err error) string {
	msg := err.Error()
	for stripped := true; stripped; {
		stripped = false
		for _, s := range sentinelPrefixes {
			if p := s.Error() + ": "; strings.HasPrefix(msg, p) {
				msg = msg[len(p):]
				stripped = true
			}
		}
	}
	for _, s := range sentinelPrefixes {
		if msg == s.Error() {
			return ""
		}
	}
	return msg
}

// UserMessage returns the text to show for a failed write. Rule violations
// and upload failures keep their own wording, backend rejections show the
// backend message and anything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if msg, ok := validators.Message(err); ok {
		return msg
	}

	var ue *uploadError
	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, ErrAuthRequired):
		return app.MsgAuthRequired
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidLoginCredentials
	case errors.Is(err, ErrEmailNotConfirmed):
		return app.MsgEmailNotConfirmed
	case errors.Is(err, ErrUserAlreadyExists):
		return app.MsgUserAlreadyRegistered
	case errors.Is(err, store.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, store.ErrConflict), errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrUnprocessable):
		if msg := backendMessage(err); msg != "" {
			return msg
		}
	}

	return fallback
}

// uploadError names the file whose upload aborted a photo batch.
type uploadError struct {
	name  string
	cause error
}

func (e *uploadError) Error() string {
	return fmt.Sprintf(app.MsgFailedUploadFile, e.name, backendMessage(e.cause))
}

func (e *uploadError) Is(target error) bool { return target == ErrStorage }

func (e *uploadError) Unwrap() error { return e.cause }
