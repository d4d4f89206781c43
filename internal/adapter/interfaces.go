// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the hosted backend (BaaS) the
// travel journal runs on: a GoTrue-style auth API, a PostgREST-style record
// API and an object storage API.
//
// The abstractions are split by concern ([AuthAdapter], [RecordAdapter],
// [ObjectStorageAdapter]) so stores and services depend only on what they
// use. [NewBaaSAdapter] returns one HTTP implementation of all three.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-travel-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/baas_adapter_mock.go -package=mock

// AuthAdapter talks to the auth provider. Tokens are passed explicitly; the
// adapter keeps no session state.
type AuthAdapter interface {
	// SignIn exchanges email and password for a token grant.
	SignIn(ctx context.Context, creds models.Credentials) (models.AuthToken, error)

	// SignUp creates an account. When the provider requires email
	// confirmation the returned grant has an empty AccessToken and only User
	// is populated. redirectTo is where the confirmation link points.
	SignUp(ctx context.Context, creds models.Credentials, redirectTo string) (models.AuthToken, error)

	// GetUser returns the user the access token belongs to.
	GetUser(ctx context.Context, accessToken string) (models.User, error)

	// Refresh exchanges a refresh token for a new grant.
	Refresh(ctx context.Context, refreshToken string) (models.AuthToken, error)

	// SignOut revokes the session behind accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// Verify confirms an emailed token hash (type "signup", "email",
	// "recovery", ...) and returns the resulting grant.
	Verify(ctx context.Context, tokenHash, verifyType string) (models.AuthToken, error)
}

// RecordAdapter reads and writes table rows. All calls run as the user whose
// access token is in ctx (see utils.WithUser), or anonymously otherwise.
type RecordAdapter interface {
	// Select decodes all rows matching q into dest, which must be a pointer
	// to a slice.
	Select(ctx context.Context, q *Query, dest any) error

	// Count returns the exact number of rows matching q.
	Count(ctx context.Context, q *Query) (int, error)

	// Insert creates row in table and decodes the stored row into dest
	// (may be nil).
	Insert(ctx context.Context, table string, row any, dest any) error

	// Upsert inserts row or merges it into the existing row that conflicts
	// on onConflict, in one request.
	Upsert(ctx context.Context, table string, row any, onConflict string, dest any) error

	// Update applies patch to the rows matching q and decodes the first
	// updated row into dest. found is false when no row matched.
	Update(ctx context.Context, q *Query, patch any, dest any) (found bool, err error)

	// Delete removes the rows matching q and returns how many were removed.
	Delete(ctx context.Context, q *Query) (int, error)
}

// ObjectStorageAdapter stores binary objects in named buckets.
type ObjectStorageAdapter interface {
	// Upload stores body under bucket/path.
	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, opts models.UploadOptions) error

	// PublicURL returns the public URL of bucket/path. It performs no I/O.
	PublicURL(bucket, path string) string

	// Remove deletes the given paths from bucket.
	Remove(ctx context.Context, bucket string, paths []string) error
}

// BaaS is the full backend client.
type BaaS interface {
	AuthAdapter
	RecordAdapter
	ObjectStorageAdapter
}
