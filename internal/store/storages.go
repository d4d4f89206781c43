package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/crypto"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// Storages aggregates every store the services need, built from config.
type Storages struct {
	TripRepository    TripRepository
	EntryRepository   EntryRepository
	ProfileRepository ProfileRepository
	ObjectStorage     ObjectStorage
	SessionStore      SessionStore

	// Redis is the shared client when Redis is configured, nil otherwise.
	Redis *redis.Client

	db *DB
}

// NewStorages builds the record, object and session backends selected by
// cfg. The BaaS client is used by the "baas" backends.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, baas adapter.BaaS, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.Storage.Backend {
	case config.BackendBaaS:
		s.TripRepository = NewBaaSTripRepository(baas, log)
		s.EntryRepository = NewBaaSEntryRepository(baas, log)
		s.ProfileRepository = NewBaaSProfileRepository(baas, log)
	case config.BackendPostgres, config.BackendSQLite:
		db, err := connectDB(ctx, cfg.Storage.Backend, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		s.db = db
		s.TripRepository = NewTripRepository(db, log)
		s.EntryRepository = NewEntryRepository(db, log)
		s.ProfileRepository = NewProfileRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}

	switch cfg.Storage.ObjectsBackend {
	case config.BackendBaaS:
		s.ObjectStorage = NewBaaSObjectStorage(baas, log)
	case config.BackendS3:
		s.ObjectStorage = NewS3ObjectStorage(cfg.Storage.S3, log)
	default:
		_ = s.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.ObjectsBackend)
	}

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Redis = client
	}

	switch cfg.Session.Backend {
	case config.BackendMemory:
		s.SessionStore = NewMemorySessionStore(cfg.Session.TTL)
	case config.BackendRedis:
		if s.Redis == nil {
			_ = s.Close()
			return nil, fmt.Errorf("%w: redis sessions need REDIS_ADDRESS", ErrUnknownBackend)
		}
		sealer, err := crypto.NewSealer(cfg.App.SessionSecret)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.SessionStore = NewRedisSessionStore(s.Redis, sealer, cfg.Session.TTL, log)
	default:
		_ = s.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Session.Backend)
	}

	log.Info().
		Str("func", "NewStorages").
		Str("records", cfg.Storage.Backend).
		Str("objects", cfg.Storage.ObjectsBackend).
		Str("sessions", cfg.Session.Backend).
		Msg("storages initialized")

	return s, nil
}

func connectDB(ctx context.Context, backend string, cfg config.DB, log *logger.Logger) (*DB, error) {
	if backend == config.BackendSQLite {
		return NewConnectSQLite(ctx, cfg, log)
	}
	return NewConnectPostgres(ctx, cfg, log)
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	return errors.Join(errs...)
}
