package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// TripServiceWrapper decorates a TripService, e.g. with validation.
type TripServiceWrapper interface {
	Wrap(TripService) TripService
}

// EntryServiceWrapper decorates an EntryService, e.g. with validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

// TripValidationService rejects invalid trip input before it reaches the
// wrapped service.
type TripValidationService struct {
	inner     TripService
	validator validators.Validator
}

func NewTripValidationService() TripServiceWrapper {
	return &TripValidationService{
		validator: validators.NewJournalValidator(),
	}
}

func (v *TripValidationService) Wrap(inner TripService) TripService {
	v.inner = inner
	return v
}

func (v *TripValidationService) CreateTrip(ctx context.Context, trip models.TripCreate) (*models.Trip, error) {
	trip.Tags = normalizeTags(trip.Tags)
	if err := v.validator.Validate(ctx, trip); err != nil {
		return nil, fmt.Errorf("trip validation failed: %w", err)
	}
	return v.inner.CreateTrip(ctx, trip)
}

func (v *TripValidationService) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	return v.inner.GetTrip(ctx, id)
}

func (v *TripValidationService) ListUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	return v.inner.ListUserTrips(ctx, userID)
}

func (v *TripValidationService) ListPublicTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	return v.inner.ListPublicTrips(ctx, userID)
}

func (v *TripValidationService) UpdateTrip(ctx context.Context, id string, update models.TripUpdate) (*models.Trip, error) {
	if update.Tags != nil {
		tags := normalizeTags(*update.Tags)
		update.Tags = &tags
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, fmt.Errorf("trip validation failed: %w", err)
	}
	return v.inner.UpdateTrip(ctx, id, update)
}

func (v *TripValidationService) DeleteTrip(ctx context.Context, id string) (bool, error) {
	return v.inner.DeleteTrip(ctx, id)
}

func (v *TripValidationService) CountUserTrips(ctx context.Context, userID string) (int, error) {
	return v.inner.CountUserTrips(ctx, userID)
}

// EntryValidationService rejects invalid memory input before it reaches the
// wrapped service.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewJournalValidator(),
	}
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, tripID string, entry models.EntryCreate) (*models.TripEntry, error) {
	entry.Tags = normalizeTags(entry.Tags)
	if err := v.validator.Validate(ctx, entry); err != nil {
		return nil, fmt.Errorf("memory validation failed: %w", err)
	}
	return v.inner.CreateEntry(ctx, tripID, entry)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, id string) (*models.TripEntry, error) {
	return v.inner.GetEntry(ctx, id)
}

func (v *EntryValidationService) ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error) {
	return v.inner.ListTripEntries(ctx, tripID)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, id string, update models.EntryUpdate) (*models.TripEntry, error) {
	if update.Tags != nil {
		tags := normalizeTags(*update.Tags)
		update.Tags = &tags
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, fmt.Errorf("memory validation failed: %w", err)
	}
	return v.inner.UpdateEntry(ctx, id, update)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, id string) (bool, error) {
	return v.inner.DeleteEntry(ctx, id)
}

func (v *EntryValidationService) CountUserMemories(ctx context.Context, userID string) (int, error) {
	return v.inner.CountUserMemories(ctx, userID)
}

func (v *EntryValidationService) RecentMemories(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error) {
	return v.inner.RecentMemories(ctx, userID, limit)
}

func (v *EntryValidationService) AllMemories(ctx context.Context, userID string) ([]models.RecentMemory, error) {
	return v.inner.AllMemories(ctx, userID)
}

// normalizeTags trims tags, drops blanks and keeps the first of duplicates.
func normalizeTags(tags models.StringList) models.StringList {
	out := models.StringList{}
	for _, tag := range tags {
		out = out.WithTag(tag)
	}
	return out
}
