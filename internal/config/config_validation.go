// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Backend names accepted in Storage and Session.
const (
	BackendBaaS     = "baas"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendS3       = "s3"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Defaults applied after merging all sources.
const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultServerTimeout     = 30 * time.Second
	DefaultBaaSTimeout       = 15 * time.Second
	DefaultSessionCookieName = "tj_session"
	DefaultSessionTTL        = 7 * 24 * time.Hour
	DefaultSweepInterval     = 10 * time.Minute
	DefaultEventsChannel     = "travel-journal:events"
	DefaultS3Region          = "us-east-1"
)

// applyDefaults fills fields that no source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}
	if cfg.App.PublicBaseURL == "" {
		cfg.App.PublicBaseURL = "http://" + cfg.Server.HTTPAddress
	}
	if cfg.BaaS.RequestTimeout == 0 {
		cfg.BaaS.RequestTimeout = DefaultBaaSTimeout
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendBaaS
	}
	if cfg.Storage.ObjectsBackend == "" {
		cfg.Storage.ObjectsBackend = BackendBaaS
	}
	if cfg.Storage.S3.Region == "" {
		cfg.Storage.S3.Region = DefaultS3Region
	}
	if cfg.Storage.S3.PublicURL == "" {
		cfg.Storage.S3.PublicURL = cfg.Storage.S3.Endpoint
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = BackendMemory
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultSessionCookieName
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}
	if cfg.Session.SweepInterval == 0 {
		cfg.Session.SweepInterval = DefaultSweepInterval
	}
	if cfg.Redis.EventsChannel == "" {
		cfg.Redis.EventsChannel = DefaultEventsChannel
	}
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. All problems are reported at once via errors.Join.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if err := validateBaaS(cfg.BaaS.URL, cfg.BaaS.AnonKey); err != nil {
		errs = append(errs, err)
	}

	switch cfg.Storage.Backend {
	case BackendBaaS:
	case BackendPostgres, BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend))
	}

	switch cfg.Storage.ObjectsBackend {
	case BackendBaaS:
	case BackendS3:
		s3 := cfg.Storage.S3
		if s3.Endpoint == "" || s3.AccessKeyID == "" || s3.SecretAccessKey == "" {
			errs = append(errs, fmt.Errorf("%w: s3 needs endpoint and credentials", ErrInvalidObjectStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown backend %q", ErrInvalidObjectStorageConfigs, cfg.Storage.ObjectsBackend))
	}

	switch cfg.Session.Backend {
	case BackendMemory:
	case BackendRedis:
		if cfg.Redis.Address == "" {
			errs = append(errs, fmt.Errorf("%w: redis backend needs REDIS_ADDRESS", ErrInvalidSessionConfigs))
		}
		if cfg.App.SessionSecret == "" {
			errs = append(errs, fmt.Errorf("%w: redis backend needs APP_SESSION_SECRET", ErrInvalidSessionConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Session.Backend))
	}

	return errors.Join(errs...)
}

func validateBaaS(rawURL, key string) error {
	var errs []error

	if rawURL == "" {
		errs = append(errs, ErrMissingBaaSURL)
	} else if u, err := url.Parse(rawURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaaSURL, rawURL))
	}

	if key == "" {
		errs = append(errs, ErrMissingBaaSKey)
	}

	return errors.Join(errs...)
}
