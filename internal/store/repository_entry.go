package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// entryRepository is the SQL implementation of [EntryRepository].
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.TripEntry) (models.TripEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.builder(), entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("failed to build query")
		return models.TripEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.TripEntry
	err = r.withRetry(ctx, func() error {
		created, err = scanEntry(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Str("trip_id", entry.TripID).Msg("failed to insert entry")
		return models.TripEntry{}, mapError(ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, id string) (models.TripEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("failed to build query")
		return models.TripEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.TripEntry
	err = r.withRetry(ctx, func() error {
		entry, err = scanEntry(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*entryRepository.GetEntry").Str("entry_id", id).Msg("failed to select entry")
		}
		return models.TripEntry{}, mapError(ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *entryRepository) ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTripEntriesQuery(r.builder(), tripID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListTripEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListTripEntries").Str("trip_id", tripID).Msg("failed to select entries")
		return nil, mapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TripEntry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*entryRepository.ListTripEntries").Msg("failed to scan entry")
			return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, err)
	}

	return entries, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, userID, id string, update models.EntryUpdate) (models.TripEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.builder(), userID, id, update)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("failed to build query")
		return models.TripEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.TripEntry
	err = r.withRetry(ctx, func() error {
		entry, err = scanEntry(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*entryRepository.UpdateEntry").Str("entry_id", id).Msg("failed to update entry")
		}
		return models.TripEntry{}, mapError(ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, userID, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(r.builder(), userID, id)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		res, err = r.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Str("entry_id", id).Msg("failed to delete entry")
		return false, mapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return affected > 0, nil
}

func (r *entryRepository) CountUserEntries(ctx context.Context, userID string) (int, error) {
	query, args, err := buildCountUserEntriesQuery(r.builder(), userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.count(ctx, query, args...)
}

func (r *entryRepository) RecentEntries(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentEntriesQuery(r.builder(), userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.RecentEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.RecentEntries").Str("user_id", userID).Msg("failed to select recent entries")
		return nil, mapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	memories := make([]models.RecentMemory, 0)
	for rows.Next() {
		m, scanErr := scanRecentMemory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*entryRepository.RecentEntries").Msg("failed to scan entry")
			return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, scanErr)
		}
		memories = append(memories, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, err)
	}

	return memories, nil
}
