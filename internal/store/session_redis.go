package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/crypto"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps sealed sessions in Redis. Redis expires the keys
// itself, so Sweep has nothing to do.
type redisSessionStore struct {
	client *redis.Client
	sealer crypto.Sealer
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient connects to Redis and checks the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisSessionStore constructs a [SessionStore] on client. Session tokens
// are sealed with sealer before they leave the process.
func NewRedisSessionStore(client *redis.Client, sealer crypto.Sealer, ttl time.Duration, logger *logger.Logger) SessionStore {
	return &redisSessionStore{client: client, sealer: sealer, ttl: ttl, logger: logger}
}

func (s *redisSessionStore) Save(ctx context.Context, session models.Session) error {
	blob, err := s.sealer.Seal(session)
	if err != nil {
		return fmt.Errorf("%w: seal session: %w", ErrStore, err)
	}
	if err = s.client.Set(ctx, sessionKeyPrefix+session.ID, blob, s.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	blob, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Get").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	var session models.Session
	if err = s.sealer.Open(blob, &session); err != nil {
		// sealed with a rotated secret or tampered with: treat as signed out
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisSessionStore.Get").Msg("dropping unreadable session")
		_ = s.client.Del(ctx, sessionKeyPrefix+id).Err()
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

func (s *redisSessionStore) Sweep(context.Context) (int, error) {
	return 0, nil
}
