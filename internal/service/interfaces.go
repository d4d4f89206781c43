// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the journal's gateways: trips and memories (record
// gateway), photo and avatar uploads (storage gateway), profiles (profile
// resolution) and authentication.
//
// Reads return (nil, nil) or an empty slice when nothing matched; an error
// always means the store could not answer. Writes need a signed-in caller,
// taken from the context (see utils.WithUser), and return ErrAuthRequired
// without one. Successful writes are announced on the event bus.
package service

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TripService is the record gateway for trips.
type TripService interface {
	// CreateTrip stores a trip owned by the caller. The trip is always
	// public; status defaults to completed and tags to an empty set.
	CreateTrip(ctx context.Context, trip models.TripCreate) (*models.Trip, error)

	GetTrip(ctx context.Context, id string) (*models.Trip, error)

	// ListUserTrips returns the trips of userID, newest first. An empty
	// userID means the caller.
	ListUserTrips(ctx context.Context, userID string) ([]models.Trip, error)

	// ListPublicTrips returns only the public trips of userID.
	ListPublicTrips(ctx context.Context, userID string) ([]models.Trip, error)

	UpdateTrip(ctx context.Context, id string, update models.TripUpdate) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id string) (bool, error)
	CountUserTrips(ctx context.Context, userID string) (int, error)
}

// EntryService is the record gateway for memories.
type EntryService interface {
	// CreateEntry stores a memory of tripID owned by the caller. Mood
	// defaults to happy.
	CreateEntry(ctx context.Context, tripID string, entry models.EntryCreate) (*models.TripEntry, error)

	GetEntry(ctx context.Context, id string) (*models.TripEntry, error)

	// ListTripEntries returns the memories of tripID, latest entry date first.
	ListTripEntries(ctx context.Context, tripID string) ([]models.TripEntry, error)

	UpdateEntry(ctx context.Context, id string, update models.EntryUpdate) (*models.TripEntry, error)
	DeleteEntry(ctx context.Context, id string) (bool, error)
	CountUserMemories(ctx context.Context, userID string) (int, error)

	// RecentMemories returns the latest memories of userID with their trip.
	// A non-positive limit means DefaultRecentLimit.
	RecentMemories(ctx context.Context, userID string, limit int) ([]models.RecentMemory, error)

	// AllMemories returns every memory of userID with its trip.
	AllMemories(ctx context.Context, userID string) ([]models.RecentMemory, error)
}

// StorageService is the storage gateway for images.
type StorageService interface {
	// UploadAvatar validates and stores an avatar. It never fails with an
	// error value: the outcome is described by the result.
	UploadAvatar(ctx context.Context, userID string, file models.ImageFile) models.UploadResult

	// UploadEntryPhotos stores photos of a memory that already holds
	// existing images and returns their URLs in input order. Nothing is
	// uploaded when any file or the image cap is invalid.
	UploadEntryPhotos(ctx context.Context, tripID string, existing int, files []models.ImageFile) ([]string, error)

	// DeleteAvatar removes a previous avatar. Failures are logged only.
	DeleteAvatar(ctx context.Context, userID, fileName string) bool
}

// ProfileService resolves the single profile of a user.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error)

	// UpsertProfile creates the profile or updates it in one atomic write.
	UpsertProfile(ctx context.Context, userID string, fields models.ProfileUpdate) (*models.Profile, error)

	// EnsureProfile returns the profile of user, creating it with defaults
	// derived from the account on first use.
	EnsureProfile(ctx context.Context, user models.User) (*models.Profile, error)
}

// AuthService signs users in and keeps their sessions.
type AuthService interface {
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SignUp registers an account. The session is nil while the email
	// confirmation is pending.
	SignUp(ctx context.Context, creds models.Credentials) (*models.Session, error)

	// ConfirmEmail verifies the emailed token hash and starts a session.
	ConfirmEmail(ctx context.Context, tokenHash, verifyType string) (models.Session, error)

	// Session loads a stored session, refreshing its tokens when they are
	// about to expire. Unknown or unrefreshable sessions yield ErrAuthRequired.
	Session(ctx context.Context, sessionID string) (models.Session, error)

	SignOut(ctx context.Context, sessionID string) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersion(ctx context.Context) models.VersionResponse
}
