// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	// recentMemoryColumns embeds the parent trip; !inner drops memories whose
	// trip is gone.
	recentMemoryColumns = "*,trips!inner(id,title,destination)"
	profileConflictKey  = "id"
)

// mapBaaSError translates adapter errors into store sentinels.
func mapBaaSError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}

// ── Trips ───────────────────────────────────────────────────────────────────

// baasTripRepository keeps trips in the BaaS "trips" table. Row level
// security on the backend restricts writes to the owner; the user_id filter
// is sent as well.
type baasTripRepository struct {
	records adapter.RecordAdapter
	logger  *logger.Logger
}

// NewBaaSTripRepository constructs a [TripRepository] over the BaaS record API.
func NewBaaSTripRepository(records adapter.RecordAdapter, logger *logger.Logger) TripRepository {
	return &baasTripRepository{records: records, logger: logger}
}

func (r *baasTripRepository) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var created models.Trip
	if err := r.records.Insert(ctx, tripsTable, trip, &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.CreateTrip").Msg("failed to insert trip")
		return models.Trip{}, mapBaaSError(err)
	}
	return created, nil
}

func (r *baasTripRepository) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	var trips []models.Trip
	if err := r.records.Select(ctx, adapter.NewQuery(tripsTable).Eq("id", id).WithLimit(1), &trips); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.GetTrip").Str("trip_id", id).Msg("failed to select trip")
		return models.Trip{}, mapBaaSError(err)
	}
	if len(trips) == 0 {
		return models.Trip{}, ErrNotFound
	}
	return trips[0], nil
}

func (r *baasTripRepository) ListUserTrips(ctx context.Context, userID string, publicOnly bool) ([]models.Trip, error) {
	q := adapter.NewQuery(tripsTable).Eq("user_id", userID)
	if publicOnly {
		q.Eq("is_public", "true")
	}
	q.OrderBy("created_at", true)

	trips := make([]models.Trip, 0)
	if err := r.records.Select(ctx, q, &trips); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.ListUserTrips").Str("user_id", userID).Msg("failed to select trips")
		return nil, mapBaaSError(err)
	}
	if trips == nil {
		trips = make([]models.Trip, 0)
	}
	return trips, nil
}

func (r *baasTripRepository) UpdateTrip(ctx context.Context, userID, id string, update models.TripUpdate) (models.Trip, error) {
	var trip models.Trip
	found, err := r.records.Update(ctx, adapter.NewQuery(tripsTable).Eq("id", id).Eq("user_id", userID), update, &trip)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.UpdateTrip").Str("trip_id", id).Msg("failed to update trip")
		return models.Trip{}, mapBaaSError(err)
	}
	if !found {
		return models.Trip{}, ErrNotFound
	}
	return trip, nil
}

func (r *baasTripRepository) DeleteTrip(ctx context.Context, userID, id string) (bool, error) {
	n, err := r.records.Delete(ctx, adapter.NewQuery(tripsTable).Eq("id", id).Eq("user_id", userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.DeleteTrip").Str("trip_id", id).Msg("failed to delete trip")
		return false, mapBaaSError(err)
	}
	return n > 0, nil
}

func (r *baasTripRepository) CountUserTrips(ctx context.Context, userID string) (int, error) {
	n, err := r.records.Count(ctx, adapter.NewQuery(tripsTable).Select("id").Eq("user_id", userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasTripRepository.CountUserTrips").Str("user_id", userID).Msg("failed to count trips")
		return 0, mapBaaSError(err)
	}
	return n, nil
}

// ── Entries ─────────────────────────────────────────────────────────────────

type baasEntryRepository struct {
	records adapter.RecordAdapter
	logger  *logger.Logger
}

// NewBaaSEntryRepository constructs an [EntryRepository] over the BaaS record API.
func NewBaaSEntryRepository(records adapter.RecordAdapter, logger *logger.Logger) EntryRepository {
	return &baasEntryRepository{records: records, logger: logger}
}

func (r *baasEntryRepository) CreateEntry(ctx context.Context, entry models.TripEntry) (models.TripEntry, error) {
	var created models.TripEntry
	if err := r.records.Insert(ctx, entriesTable, entry, &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.CreateEntry").Str("trip_id", entry.TripID).Msg("failed to insert entry")
		return models.TripEntry{}, mapBaaSError(err)
	}
	return created, nil
}

func (r *baasEntryRepository) GetEntry(ctx context.Context, id string) (models.TripEntry, error) {
	var entries []models.TripEntry
	if err := r.records.Select(ctx, adapter.NewQuery(entriesTable).Eq("id", id).WithLimit(1), &entries); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.GetEntry").Str("entry_id", id).Msg("failed to select entry")
		return models.TripEntry{}, mapBaaSError(err)
	}
	if len(entries) == 0 {
		return models.TripEntry{}, ErrNotFound
	}
	return entries[0], nil
}

func (r *baasEntryRepository) ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error) {
	entries := make([]models.TripEntry, 0)
	q := adapter.NewQuery(entriesTable).Eq("trip_id", tripID).OrderBy("entry_date", true)
	if err := r.records.Select(ctx, q, &entries); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.ListTripEntries").Str("trip_id", tripID).Msg("failed to select entries")
		return nil, mapBaaSError(err)
	}
	if entries == nil {
		entries = make([]models.TripEntry, 0)
	}
	return entries, nil
}

func (r *baasEntryRepository) UpdateEntry(ctx context.Context, userID, id string, update models.EntryUpdate) (models.TripEntry, error) {
	var entry models.TripEntry
	found, err := r.records.Update(ctx, adapter.NewQuery(entriesTable).Eq("id", id).Eq("user_id", userID), update, &entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.UpdateEntry").Str("entry_id", id).Msg("failed to update entry")
		return models.TripEntry{}, mapBaaSError(err)
	}
	if !found {
		return models.TripEntry{}, ErrNotFound
	}
	return entry, nil
}

func (r *baasEntryRepository) DeleteEntry(ctx context.Context, userID, id string) (bool, error) {
	n, err := r.records.Delete(ctx, adapter.NewQuery(entriesTable).Eq("id", id).Eq("user_id", userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.DeleteEntry").Str("entry_id", id).Msg("failed to delete entry")
		return false, mapBaaSError(err)
	}
	return n > 0, nil
}

func (r *baasEntryRepository) CountUserEntries(ctx context.Context, userID string) (int, error) {
	n, err := r.records.Count(ctx, adapter.NewQuery(entriesTable).Select("id").Eq("user_id", userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.CountUserEntries").Str("user_id", userID).Msg("failed to count entries")
		return 0, mapBaaSError(err)
	}
	return n, nil
}

func (r *baasEntryRepository) RecentEntries(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error) {
	q := adapter.NewQuery(entriesTable).
		Select(recentMemoryColumns).
		Eq("user_id", userID).
		OrderBy("entry_date", true)
	if limit > 0 {
		q.WithLimit(limit)
	}

	memories := make([]models.RecentMemory, 0)
	if err := r.records.Select(ctx, q, &memories); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasEntryRepository.RecentEntries").Str("user_id", userID).Msg("failed to select recent entries")
		return nil, mapBaaSError(err)
	}
	if memories == nil {
		memories = make([]models.RecentMemory, 0)
	}
	return memories, nil
}

// ── Profiles ────────────────────────────────────────────────────────────────

type baasProfileRepository struct {
	records adapter.RecordAdapter
	logger  *logger.Logger
}

// profilePatch is the body of profile updates: the changed fields plus the
// new updated_at.
type profilePatch struct {
	ID        string    `json:"id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	models.ProfileUpdate
}

// NewBaaSProfileRepository constructs a [ProfileRepository] over the BaaS record API.
func NewBaaSProfileRepository(records adapter.RecordAdapter, logger *logger.Logger) ProfileRepository {
	return &baasProfileRepository{records: records, logger: logger}
}

func (r *baasProfileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	var profiles []models.Profile
	if err := r.records.Select(ctx, adapter.NewQuery(profilesTable).Eq("id", id).WithLimit(1), &profiles); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasProfileRepository.GetProfile").Str("user_id", id).Msg("failed to select profile")
		return models.Profile{}, mapBaaSError(err)
	}
	if len(profiles) == 0 {
		return models.Profile{}, ErrNotFound
	}
	return profiles[0], nil
}

func (r *baasProfileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var created models.Profile
	if err := r.records.Insert(ctx, profilesTable, profile, &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasProfileRepository.CreateProfile").Str("user_id", profile.ID).Msg("failed to insert profile")
		return models.Profile{}, mapBaaSError(err)
	}
	return created, nil
}

func (r *baasProfileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error) {
	var profile models.Profile
	patch := profilePatch{UpdatedAt: now, ProfileUpdate: update}
	found, err := r.records.Update(ctx, adapter.NewQuery(profilesTable).Eq("id", id), patch, &profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasProfileRepository.UpdateProfile").Str("user_id", id).Msg("failed to update profile")
		return models.Profile{}, mapBaaSError(err)
	}
	if !found {
		return models.Profile{}, ErrNotFound
	}
	return profile, nil
}

// UpsertProfile sends only id, updated_at and the set fields, so a merge keeps
// the columns the caller did not mention and created_at keeps its default.
func (r *baasProfileRepository) UpsertProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error) {
	var profile models.Profile
	row := profilePatch{ID: id, UpdatedAt: now, ProfileUpdate: update}
	if err := r.records.Upsert(ctx, profilesTable, row, profileConflictKey, &profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*baasProfileRepository.UpsertProfile").Str("user_id", id).Msg("failed to upsert profile")
		return models.Profile{}, mapBaaSError(err)
	}
	return profile, nil
}
