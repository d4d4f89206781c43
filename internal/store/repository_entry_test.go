package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, DialectPostgres)
	return &entryRepository{DB: db, logger: logger.Nop()}, mock
}

func entryRow(rows *sqlmock.Rows, id string, date time.Time, extra ...driver.Value) *sqlmock.Rows {
	values := []driver.Value{id, date, nil, "trip-1", "user-1", "Beach day", "Sun and sand",
		`["swim","eat"]`, nil, date, "excited", "sunny", `["https://img/1.jpg"]`, `["beach"]`}
	return rows.AddRow(append(values, extra...)...)
}

func TestEntryRepository_CreateEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	entry := models.TripEntry{
		ID:        "entry-1",
		CreatedAt: date,
		TripID:    "trip-1",
		UserID:    "user-1",
		Title:     "Beach day",
		Content:   "Sun and sand",
		Notes:     models.Notes{"swim", "eat"},
		EntryDate: models.NewDate(2024, 5, 2),
		Mood:      models.MoodExcited,
		Weather:   models.Ptr("sunny"),
		ImageURLs: models.StringList{"https://img/1.jpg"},
		Tags:      models.StringList{"beach"},
	}

	mock.ExpectQuery("INSERT INTO trip_entries").
		WithArgs("entry-1", date, nil, "trip-1", "user-1", "Beach day", "Sun and sand",
			`["swim","eat"]`, nil, "2024-05-02", "excited", "sunny", `["https://img/1.jpg"]`, `["beach"]`).
		WillReturnRows(entryRow(sqlmock.NewRows(entryColumns), "entry-1", date))

	created, err := repo.CreateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, models.MoodExcited, created.Mood)
	assert.Equal(t, models.Notes{"swim", "eat"}, created.Notes)
	assert.Equal(t, "https://img/1.jpg", created.CoverImage())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_CreateEntry_MissingTrip(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("INSERT INTO trip_entries").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateEntry(context.Background(), models.TripEntry{ID: "e", TripID: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepository_GetEntry_NotFound(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("FROM trip_entries WHERE id = \\$1").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEntry(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepository_ListTripEntries(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	later := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "entry-2", later)
	entryRow(rows, "entry-1", earlier)

	mock.ExpectQuery("FROM trip_entries WHERE trip_id = \\$1 ORDER BY entry_date DESC").
		WithArgs("trip-1").
		WillReturnRows(rows)

	entries, err := repo.ListTripEntries(context.Background(), "trip-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "entry-2", entries[0].ID)
	assert.Equal(t, models.NewDate(2024, 5, 5), entries[0].EntryDate)
}

func TestEntryRepository_ListTripEntries_Empty(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("FROM trip_entries").WillReturnRows(sqlmock.NewRows(entryColumns))

	entries, err := repo.ListTripEntries(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestEntryRepository_UpdateEntry_OwnerPredicate(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mood := models.MoodSad

	mock.ExpectQuery("UPDATE trip_entries SET mood = \\$1, updated_at = \\$2 WHERE id = \\$3 AND user_id = \\$4").
		WithArgs("sad", now, "entry-1", "user-1").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.UpdateEntry(context.Background(), "user-1", "entry-1", models.EntryUpdate{Mood: &mood, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_DeleteEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectExec("DELETE FROM trip_entries WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("entry-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.DeleteEntry(context.Background(), "user-1", "entry-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEntryRepository_CountUserEntries_Zero(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trip_entries").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.CountUserEntries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEntryRepository_RecentEntries(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	date := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	cols := append(append([]string{}, entryColumns...), "trip_id_2", "trip_title", "trip_destination")
	rows := entryRow(sqlmock.NewRows(cols), "entry-1", date, "trip-1", "Portugal", "Lisbon")

	mock.ExpectQuery("JOIN trips t ON t.id = e.trip_id WHERE e.user_id = \\$1 ORDER BY e.entry_date DESC, e.created_at DESC LIMIT 3").
		WithArgs("user-1").
		WillReturnRows(rows)

	memories, err := repo.RecentEntries(context.Background(), "user-1", 3)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, "entry-1", memories[0].ID)
	assert.Equal(t, models.TripSummary{ID: "trip-1", Title: "Portugal", Destination: "Lisbon"}, memories[0].Trip)
}
