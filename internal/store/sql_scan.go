package store

import (
	"github.com/MKhiriev/go-travel-journal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var (
		t      models.Trip
		status string
	)
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Title, &t.Description,
		&t.Destination, &t.StartDate, &t.EndDate, &t.IsPublic, &t.CoverImageURL,
		&status, &t.Tags, &t.Budget, &t.Currency)
	t.Status = models.TripStatus(status)
	return t, err
}

func entryDest(e *models.TripEntry, mood *string) []any {
	return []any{&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.TripID, &e.UserID, &e.Title,
		&e.Content, &e.Notes, &e.Location, &e.EntryDate, mood, &e.Weather,
		&e.ImageURLs, &e.Tags}
}

func scanEntry(row rowScanner) (models.TripEntry, error) {
	var (
		e    models.TripEntry
		mood string
	)
	err := row.Scan(entryDest(&e, &mood)...)
	e.Mood = models.Mood(mood)
	return e, err
}

func scanRecentMemory(row rowScanner) (models.RecentMemory, error) {
	var (
		m    models.RecentMemory
		mood string
	)
	dest := append(entryDest(&m.TripEntry, &mood), &m.Trip.ID, &m.Trip.Title, &m.Trip.Destination)
	err := row.Scan(dest...)
	m.Mood = models.Mood(mood)
	return m, err
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.DisplayName, &p.AvatarURL, &p.Bio,
		&p.Username, &p.Location, &p.X, &p.Instagram, &p.Facebook, &p.Website)
	return p, err
}
