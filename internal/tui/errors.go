// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns service and network failures into a line for the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailNotConfirmed):
		return "Please confirm your email before signing in"
	case errors.Is(err, service.ErrAuthRequired):
		return "Your session has expired, please sign in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the backend is unavailable"
	}

	return err.Error()
}
