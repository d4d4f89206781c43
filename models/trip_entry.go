// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Mood is how the traveller felt on the day of a memory.
type Mood string

const (
	MoodExcited  Mood = "excited"
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// Moods lists every accepted mood in display order.
var Moods = []Mood{MoodExcited, MoodHappy, MoodNeutral, MoodSad, MoodStressed}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// Emoji returns the icon shown next to a memory. Unknown moods fall back
// to the happy face.
func (m Mood) Emoji() string {
	switch m {
	case MoodExcited:
		return "😃"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	case MoodStressed:
		return "😰"
	default:
		return "😊"
	}
}

// MaxEntryImages is the number of photos a single memory may hold.
const MaxEntryImages = 5

// TripEntry is a dated memory attached to a trip.
type TripEntry struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	TripID string `json:"trip_id"`
	UserID string `json:"user_id"`

	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Notes     Notes      `json:"notes"`
	Location  *string    `json:"location"`
	EntryDate Date       `json:"entry_date"`
	Mood      Mood       `json:"mood"`
	Weather   *string    `json:"weather"`
	ImageURLs StringList `json:"image_urls"`
	Tags      StringList `json:"tags"`
}

// TableName returns the name of the table holding memories.
func (TripEntry) TableName() string {
	return "trip_entries"
}

// CoverImage returns the first photo, or an empty string without photos.
func (e TripEntry) CoverImage() string {
	if len(e.ImageURLs) == 0 {
		return ""
	}
	return e.ImageURLs[0]
}

// EntryCreate carries the fields of the new-memory form.
type EntryCreate struct {
	Title     string
	Content   string
	Notes     Notes
	Location  *string
	EntryDate Date
	Mood      Mood
	Weather   *string
	ImageURLs StringList
	Tags      StringList
}

// EntryUpdate is a partial update. Only non-nil fields are written.
type EntryUpdate struct {
	Title     *string     `json:"title,omitempty"`
	Content   *string     `json:"content,omitempty"`
	Notes     *Notes      `json:"notes,omitempty"`
	Location  *string     `json:"location,omitempty"`
	EntryDate *Date       `json:"entry_date,omitempty"`
	Mood      *Mood       `json:"mood,omitempty"`
	Weather   *string     `json:"weather,omitempty"`
	ImageURLs *StringList `json:"image_urls,omitempty"`
	Tags      *StringList `json:"tags,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the update carries no field besides the timestamp.
func (u EntryUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Notes == nil &&
		u.Location == nil && u.EntryDate == nil && u.Mood == nil &&
		u.Weather == nil && u.ImageURLs == nil && u.Tags == nil
}

// TripSummary is the slice of a parent trip shown next to a memory.
type TripSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
}

// RecentMemory is a memory joined with its parent trip.
type RecentMemory struct {
	TripEntry
	Trip TripSummary `json:"trips"`
}
