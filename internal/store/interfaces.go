// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the record backends (BaaS tables or a SQL database),
// object storage for photos and avatars, and the web session stores.
//
// Every repository reports a missing row as [ErrNotFound] and a duplicate as
// [ErrConflict]; anything else is wrapped in [ErrStore]. Ownership is part of
// every update and delete: a row belonging to another user is reported as not
// found.
package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TripRepository persists trips.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	GetTrip(ctx context.Context, id string) (models.Trip, error)
	// ListUserTrips returns the trips of userID, newest created first.
	// With publicOnly set only trips flagged public are returned.
	ListUserTrips(ctx context.Context, userID string, publicOnly bool) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, userID, id string, update models.TripUpdate) (models.Trip, error)
	DeleteTrip(ctx context.Context, userID, id string) (bool, error)
	CountUserTrips(ctx context.Context, userID string) (int, error)
}

// EntryRepository persists memories.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.TripEntry) (models.TripEntry, error)
	GetEntry(ctx context.Context, id string) (models.TripEntry, error)
	// ListTripEntries returns the memories of a trip, latest entry date first.
	ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error)
	UpdateEntry(ctx context.Context, userID, id string, update models.EntryUpdate) (models.TripEntry, error)
	DeleteEntry(ctx context.Context, userID, id string) (bool, error)
	CountUserEntries(ctx context.Context, userID string) (int, error)
	// RecentEntries returns memories of userID joined with their trip, latest
	// entry date first. A limit of zero or less returns all of them.
	RecentEntries(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error)
}

// ProfileRepository persists profiles. A profile ID equals its user ID.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error)
	// UpsertProfile inserts the profile or, when it already exists, writes
	// the non-nil fields of update in a single statement.
	UpsertProfile(ctx context.Context, id string, update models.ProfileUpdate, now time.Time) (models.Profile, error)
}

// ObjectStorage stores uploaded files in buckets.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, opts models.UploadOptions) error
	PublicURL(bucket, path string) string
	Remove(ctx context.Context, bucket string, paths []string) error
}

// SessionStore keeps web sessions by their opaque id.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
	// Sweep drops expired sessions and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
}
