// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading the session and flash cookies.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidCookieSignature is returned when a cookie value does not
	// carry a valid HMAC of its payload.
	ErrInvalidCookieSignature = errors.New("invalid cookie signature")

	// ErrMalformedCookie is returned when a cookie value cannot be split
	// into payload and signature or its payload cannot be decoded.
	ErrMalformedCookie = errors.New("malformed cookie")

	// ErrInvalidForm is returned when a submitted form cannot be parsed.
	ErrInvalidForm = errors.New("invalid form")
)
