// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// tripRepository is the SQL implementation of [TripRepository]. It works
// against Postgres and SQLite, the dialect only changes placeholders.
type tripRepository struct {
	*DB
	logger *logger.Logger
}

// NewTripRepository constructs a [TripRepository] backed by db.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTripQuery(r.builder(), trip)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("failed to build query")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Trip
	err = r.withRetry(ctx, func() error {
		created, err = scanTrip(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Str("trip_id", trip.ID).Msg("failed to insert trip")
		return models.Trip{}, mapError(ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *tripRepository) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTripQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.GetTrip").Msg("failed to build query")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var trip models.Trip
	err = r.withRetry(ctx, func() error {
		trip, err = scanTrip(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*tripRepository.GetTrip").Str("trip_id", id).Msg("failed to select trip")
		}
		return models.Trip{}, mapError(ErrExecutingQuery, err)
	}

	return trip, nil
}

func (r *tripRepository) ListUserTrips(ctx context.Context, userID string, publicOnly bool) ([]models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserTripsQuery(r.builder(), userID, publicOnly)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserTrips").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserTrips").Str("user_id", userID).Msg("failed to select trips")
		return nil, mapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		trip, scanErr := scanTrip(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*tripRepository.ListUserTrips").Msg("failed to scan trip")
			return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, scanErr)
		}
		trips = append(trips, trip)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserTrips").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, err)
	}

	return trips, nil
}

func (r *tripRepository) UpdateTrip(ctx context.Context, userID, id string, update models.TripUpdate) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTripQuery(r.builder(), userID, id, update)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.UpdateTrip").Msg("failed to build query")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var trip models.Trip
	err = r.withRetry(ctx, func() error {
		trip, err = scanTrip(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*tripRepository.UpdateTrip").Str("trip_id", id).Msg("failed to update trip")
		}
		return models.Trip{}, mapError(ErrExecutingStatement, err)
	}

	return trip, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, userID, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTripQuery(r.builder(), userID, id)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteTrip").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		res, err = r.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteTrip").Str("trip_id", id).Msg("failed to delete trip")
		return false, mapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return affected > 0, nil
}

func (r *tripRepository) CountUserTrips(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUserTripsQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CountUserTrips").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, query, args...)
}

// count runs a SELECT COUNT(*) query.
func (db *DB) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := db.withRetry(ctx, func() error {
		return db.QueryRowContext(ctx, query, args...).Scan(&n)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.count").Msg("failed to count rows")
		return 0, mapError(ErrExecutingQuery, err)
	}
	return n, nil
}
