package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	tripsTable    = "trips"
	entriesTable  = "trip_entries"
	profilesTable = "profiles"

	returningTrip    = "RETURNING id, created_at, updated_at, user_id, title, description, destination, start_date, end_date, is_public, cover_image_url, status, tags, budget, currency"
	returningEntry   = "RETURNING id, created_at, updated_at, trip_id, user_id, title, content, notes, location, entry_date, mood, weather, image_urls, tags"
	returningProfile = `RETURNING id, created_at, updated_at, "display-name", avatar_url, bio, username, location, x, instagram, facebook, website`
)

var (
	tripColumns = []string{
		"id", "created_at", "updated_at", "user_id", "title", "description",
		"destination", "start_date", "end_date", "is_public", "cover_image_url",
		"status", "tags", "budget", "currency",
	}
	entryColumns = []string{
		"id", "created_at", "updated_at", "trip_id", "user_id", "title",
		"content", "notes", "location", "entry_date", "mood", "weather",
		"image_urls", "tags",
	}
	profileColumns = []string{
		"id", "created_at", "updated_at", `"display-name"`, "avatar_url", "bio",
		"username", "location", "x", "instagram", "facebook", "website",
	}
)

// ── Trips ───────────────────────────────────────────────────────────────────

func buildInsertTripQuery(sb sq.StatementBuilderType, t models.Trip) (string, []any, error) {
	return sb.Insert(tripsTable).
		Columns(tripColumns...).
		Values(t.ID, t.CreatedAt, t.UpdatedAt, t.UserID, t.Title, t.Description,
			t.Destination, t.StartDate, t.EndDate, t.IsPublic, t.CoverImageURL,
			string(t.Status), t.Tags, t.Budget, t.Currency).
		Suffix(returningTrip).
		ToSql()
}

func buildSelectTripQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(tripColumns...).
		From(tripsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListUserTripsQuery(sb sq.StatementBuilderType, userID string, publicOnly bool) (string, []any, error) {
	where := sq.Eq{"user_id": userID}
	if publicOnly {
		where["is_public"] = true
	}
	return sb.Select(tripColumns...).
		From(tripsTable).
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
}

// buildUpdateTripQuery writes only the non-nil fields of u. The owner
// predicate keeps users from touching trips of someone else.
func buildUpdateTripQuery(sb sq.StatementBuilderType, userID, id string, u models.TripUpdate) (string, []any, error) {
	set := map[string]any{"updated_at": u.UpdatedAt}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Destination != nil {
		set["destination"] = *u.Destination
	}
	if u.StartDate != nil {
		set["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		set["end_date"] = *u.EndDate
	}
	if u.IsPublic != nil {
		set["is_public"] = *u.IsPublic
	}
	if u.CoverImageURL != nil {
		set["cover_image_url"] = *u.CoverImageURL
	}
	if u.Status != nil {
		set["status"] = string(*u.Status)
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}
	if u.Budget != nil {
		set["budget"] = *u.Budget
	}
	if u.Currency != nil {
		set["currency"] = *u.Currency
	}

	return sb.Update(tripsTable).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningTrip).
		ToSql()
}

func buildDeleteTripQuery(sb sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return sb.Delete(tripsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildCountUserTripsQuery(sb sq.StatementBuilderType, userID string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(tripsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── Entries ─────────────────────────────────────────────────────────────────

func buildInsertEntryQuery(sb sq.StatementBuilderType, e models.TripEntry) (string, []any, error) {
	return sb.Insert(entriesTable).
		Columns(entryColumns...).
		Values(e.ID, e.CreatedAt, e.UpdatedAt, e.TripID, e.UserID, e.Title,
			e.Content, e.Notes, e.Location, e.EntryDate, string(e.Mood), e.Weather,
			e.ImageURLs, e.Tags).
		Suffix(returningEntry).
		ToSql()
}

func buildSelectEntryQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListTripEntriesQuery(sb sq.StatementBuilderType, tripID string) (string, []any, error) {
	return sb.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"trip_id": tripID}).
		OrderBy("entry_date DESC", "created_at DESC").
		ToSql()
}

func buildUpdateEntryQuery(sb sq.StatementBuilderType, userID, id string, u models.EntryUpdate) (string, []any, error) {
	set := map[string]any{"updated_at": u.UpdatedAt}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Content != nil {
		set["content"] = *u.Content
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.EntryDate != nil {
		set["entry_date"] = *u.EntryDate
	}
	if u.Mood != nil {
		set["mood"] = string(*u.Mood)
	}
	if u.Weather != nil {
		set["weather"] = *u.Weather
	}
	if u.ImageURLs != nil {
		set["image_urls"] = *u.ImageURLs
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}

	return sb.Update(entriesTable).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningEntry).
		ToSql()
}

func buildDeleteEntryQuery(sb sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return sb.Delete(entriesTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildCountUserEntriesQuery(sb sq.StatementBuilderType, userID string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildRecentEntriesQuery joins memories with their trip. Only memories whose
// trip still exists are returned.
func buildRecentEntriesQuery(sb sq.StatementBuilderType, userID string, limit int) (string, []any, error) {
	cols := make([]string, 0, len(entryColumns)+3)
	for _, c := range entryColumns {
		cols = append(cols, "e."+c)
	}
	cols = append(cols, "t.id", "t.title", "t.destination")

	q := sb.Select(cols...).
		From(entriesTable + " e").
		Join(tripsTable + " t ON t.id = e.trip_id").
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("e.entry_date DESC", "e.created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

// ── Profiles ────────────────────────────────────────────────────────────────

func buildSelectProfileQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertProfileQuery(sb sq.StatementBuilderType, p models.Profile) (string, []any, error) {
	return sb.Insert(profilesTable).
		Columns(profileColumns...).
		Values(p.ID, p.CreatedAt, p.UpdatedAt, p.DisplayName, p.AvatarURL, p.Bio,
			p.Username, p.Location, p.X, p.Instagram, p.Facebook, p.Website).
		Suffix(returningProfile).
		ToSql()
}

// profileUpdateColumns lists the columns set by u in a stable order.
func profileUpdateColumns(u models.ProfileUpdate) ([]string, []any) {
	fields := []struct {
		column string
		value  *string
	}{
		{`"display-name"`, u.DisplayName},
		{"avatar_url", u.AvatarURL},
		{"bio", u.Bio},
		{"username", u.Username},
		{"location", u.Location},
		{"x", u.X},
		{"instagram", u.Instagram},
		{"facebook", u.Facebook},
		{"website", u.Website},
	}
	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		cols = append(cols, f.column)
		vals = append(vals, *f.value)
	}
	return cols, vals
}

func buildUpdateProfileQuery(sb sq.StatementBuilderType, id string, u models.ProfileUpdate, now time.Time) (string, []any, error) {
	q := sb.Update(profilesTable).Set("updated_at", now)
	cols, vals := profileUpdateColumns(u)
	for i, c := range cols {
		q = q.Set(c, vals[i])
	}
	return q.Where(sq.Eq{"id": id}).
		Suffix(returningProfile).
		ToSql()
}

// buildUpsertProfileQuery inserts the profile or updates the given columns
// of the existing row in one statement. created_at is never overwritten.
func buildUpsertProfileQuery(sb sq.StatementBuilderType, id string, u models.ProfileUpdate, now time.Time) (string, []any, error) {
	cols, vals := profileUpdateColumns(u)

	insertCols := append([]string{"id", "created_at", "updated_at"}, cols...)
	insertVals := append([]any{id, now, now}, vals...)

	conflict := "ON CONFLICT (id) DO UPDATE SET updated_at = excluded.updated_at"
	for _, c := range cols {
		conflict += ", " + c + " = excluded." + c
	}

	return sb.Insert(profilesTable).
		Columns(insertCols...).
		Values(insertVals...).
		Suffix(conflict + " " + returningProfile).
		ToSql()
}
