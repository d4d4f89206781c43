package service

import "errors"

var (
	// ErrAuthRequired is returned when an operation needs a signed-in caller
	// and the context carries none. Pages redirect to /login on it.
	ErrAuthRequired = errors.New("authentication required")

	// ErrStorage is matched by object storage failures that block the
	// dependent write.
	ErrStorage = errors.New("storage error")

	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrUserAlreadyExists  = errors.New("user already registered")
	ErrSessionExpired     = errors.New("session expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
