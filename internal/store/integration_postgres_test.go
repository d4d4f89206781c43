//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// startPostgres runs a throwaway Postgres container and returns a migrated DB.
// The test is skipped when Docker is not reachable.
func startPostgres(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "journal",
			"POSTGRES_PASSWORD": "journal",
			"POSTGRES_DB":       "journal",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://journal:journal@%s:%s/journal?sslmode=disable", host, port.Port())
	db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestPostgres_TripLifecycle(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	trips := NewTripRepository(db, logger.Nop())
	entries := NewEntryRepository(db, logger.Nop())

	now := time.Now().UTC().Truncate(time.Microsecond)
	trip, err := trips.CreateTrip(ctx, models.Trip{
		ID:          utils.NewID(),
		CreatedAt:   now,
		UserID:      "user-1",
		Title:       "Portugal",
		Destination: "Lisbon",
		StartDate:   models.NewDate(2024, 5, 1),
		EndDate:     models.NewDate(2024, 5, 7),
		IsPublic:    true,
		Status:      models.TripCompleted,
		Tags:        models.StringList{},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{}, trip.Tags)

	_, err = entries.CreateEntry(ctx, models.TripEntry{
		ID:        utils.NewID(),
		CreatedAt: now,
		TripID:    trip.ID,
		UserID:    "user-1",
		Title:     "Day one",
		Notes:     models.Notes{"tram 28"},
		EntryDate: models.NewDate(2024, 5, 1),
		Mood:      models.MoodHappy,
	})
	require.NoError(t, err)

	recent, err := entries.RecentEntries(ctx, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Portugal", recent[0].Trip.Title)

	// another user cannot delete the trip
	ok, err := trips.DeleteTrip(ctx, "user-2", trip.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = trips.DeleteTrip(ctx, "user-1", trip.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := entries.CountUserEntries(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n, "entries cascade with their trip")
}

func TestPostgres_UpsertProfileIdempotent(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	profiles := NewProfileRepository(db, logger.Nop())

	update := models.ProfileUpdate{DisplayName: models.Ptr("Ana"), Bio: models.Ptr("Traveller")}
	for i := 0; i < 2; i++ {
		_, err := profiles.UpsertProfile(ctx, "user-1", update, time.Now().UTC())
		require.NoError(t, err)
	}

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = $1", "user-1").Scan(&count))
	assert.Equal(t, 1, count)

	p, err := profiles.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", *p.DisplayName)
	assert.Equal(t, "Traveller", *p.Bio)
}
