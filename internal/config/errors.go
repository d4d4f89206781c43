package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrMissingBaaSURL indicates that no backend URL was configured.
	ErrMissingBaaSURL = errors.New("missing backend URL: set BAAS_URL or SUPABASE_URL")
	// ErrMissingBaaSKey indicates that no backend anon key was configured.
	ErrMissingBaaSKey = errors.New("missing backend anon key: set BAAS_ANON_KEY or SUPABASE_ANON_KEY")
	// ErrInvalidBaaSURL indicates a backend URL without an http(s) scheme
	// or host.
	ErrInvalidBaaSURL = errors.New("invalid backend URL")
	// ErrInvalidStorageConfigs indicates an unknown storage backend or a
	// SQL backend without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidObjectStorageConfigs indicates an unknown object backend or
	// an S3 backend without endpoint or credentials.
	ErrInvalidObjectStorageConfigs = errors.New("invalid object storage configuration")
	// ErrInvalidSessionConfigs indicates an unknown session backend or a
	// redis backend without a redis address.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
