package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// profileRepository is the SQL implementation of [ProfileRepository].
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	query, args, err := buildSelectProfileQuery(r.builder(), id)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, "*profileRepository.GetProfile", ErrExecutingQuery, query, args)
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	query, args, err := buildInsertProfileQuery(r.builder(), profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, "*profileRepository.CreateProfile", ErrExecutingStatement, query, args)
}

func (r *profileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error) {
	query, args, err := buildUpdateProfileQuery(r.builder(), id, update, now)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, "*profileRepository.UpdateProfile", ErrExecutingStatement, query, args)
}

func (r *profileRepository) UpsertProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error) {
	query, args, err := buildUpsertProfileQuery(r.builder(), id, update, now)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, "*profileRepository.UpsertProfile", ErrExecutingStatement, query, args)
}

// queryProfile runs a statement returning one profile row.
func (r *profileRepository) queryProfile(ctx context.Context, fn string, op error, query string, args []any) (models.Profile, error) {
	var (
		profile models.Profile
		err     error
	)
	err = r.withRetry(ctx, func() error {
		profile, err = scanProfile(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("profile query failed")
		}
		return models.Profile{}, mapError(op, err)
	}
	return profile, nil
}
