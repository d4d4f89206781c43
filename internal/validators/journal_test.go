// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validTripCreate() models.TripCreate {
	return models.TripCreate{
		Title:       "Lisbon Week",
		Destination: "Lisbon",
		StartDate:   models.NewDate(2024, 5, 1),
		EndDate:     models.NewDate(2024, 5, 7),
	}
}

func validEntryCreate() models.EntryCreate {
	return models.EntryCreate{
		Title:     "Day one",
		EntryDate: models.NewDate(2024, 5, 1),
	}
}

func image(name, contentType string, size int64) models.ImageFile {
	return models.ImageFile{Name: name, ContentType: contentType, Size: size, Body: strings.NewReader("x")}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewJournalValidator(t *testing.T) {
	require.NotNil(t, NewJournalValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	trip := validTripCreate()
	entry := validEntryCreate()
	img := image("a.png", "image/png", 10)
	batch := ImageBatch{Files: []models.ImageFile{img}}
	profile := models.ProfileUpdate{Bio: models.Ptr("hi")}

	for name, obj := range map[string]any{
		"trip value":      trip,
		"trip pointer":    &trip,
		"entry value":     entry,
		"entry pointer":   &entry,
		"image value":     img,
		"image pointer":   &img,
		"batch value":     batch,
		"batch pointer":   &batch,
		"profile value":   profile,
		"profile pointer": &profile,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, v.Validate(ctx, obj))
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, trip, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Trips
// ---------------------------------------------------------------------------

func TestValidate_TripCreate(t *testing.T) {
	v := NewJournalValidator()

	tests := []struct {
		name    string
		mutate  func(*models.TripCreate)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.TripCreate) {}},
		{name: "blank title", mutate: func(tc *models.TripCreate) { tc.Title = "   " }, wantErr: ErrTitleRequired},
		{name: "missing destination", mutate: func(tc *models.TripCreate) { tc.Destination = "" }, wantErr: ErrDestinationRequired},
		{name: "missing start", mutate: func(tc *models.TripCreate) { tc.StartDate = models.Date{} }, wantErr: ErrStartDateRequired},
		{name: "missing end", mutate: func(tc *models.TripCreate) { tc.EndDate = models.Date{} }, wantErr: ErrEndDateRequired},
		{
			name:    "end before start",
			mutate:  func(tc *models.TripCreate) { tc.EndDate = models.NewDate(2024, 4, 30) },
			wantErr: ErrEndBeforeStart,
		},
		{
			name:   "same day accepted",
			mutate: func(tc *models.TripCreate) { tc.EndDate = tc.StartDate },
		},
		{name: "unknown status", mutate: func(tc *models.TripCreate) { tc.Status = "lost" }, wantErr: ErrInvalidStatus},
		{name: "empty status accepted", mutate: func(tc *models.TripCreate) { tc.Status = "" }},
		{name: "negative budget", mutate: func(tc *models.TripCreate) { tc.Budget = models.Ptr(-1.0) }, wantErr: ErrNegativeBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTripCreate()
			tt.mutate(&trip)

			err := v.Validate(context.Background(), trip)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidate_TripCreate_FieldScoping(t *testing.T) {
	v := NewJournalValidator()
	trip := models.TripCreate{Title: "Only a title"}

	assert.NoError(t, v.Validate(context.Background(), trip, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), trip, FieldTitle, FieldDestination), ErrDestinationRequired)
}

func TestValidate_TripUpdate(t *testing.T) {
	v := NewJournalValidator()
	start := models.NewDate(2024, 5, 7)
	end := models.NewDate(2024, 5, 1)
	bad := models.TripStatus("unknown")

	assert.ErrorIs(t, v.Validate(context.Background(), models.TripUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(context.Background(), models.TripUpdate{Title: models.Ptr("")}), ErrTitleRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), models.TripUpdate{StartDate: &start, EndDate: &end}), ErrEndBeforeStart)
	assert.ErrorIs(t, v.Validate(context.Background(), models.TripUpdate{Status: &bad}), ErrInvalidStatus)

	// a single date cannot be compared
	assert.NoError(t, v.Validate(context.Background(), models.TripUpdate{EndDate: &end}))
}

// ---------------------------------------------------------------------------
// Memories
// ---------------------------------------------------------------------------

func TestValidate_EntryCreate(t *testing.T) {
	v := NewJournalValidator()

	tests := []struct {
		name    string
		mutate  func(*models.EntryCreate)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.EntryCreate) {}},
		{name: "missing title", mutate: func(e *models.EntryCreate) { e.Title = "" }, wantErr: ErrTitleRequired},
		{name: "missing date", mutate: func(e *models.EntryCreate) { e.EntryDate = models.Date{} }, wantErr: ErrEntryDateRequired},
		{name: "unknown mood", mutate: func(e *models.EntryCreate) { e.Mood = "bored" }, wantErr: ErrInvalidMood},
		{
			name:   "five images",
			mutate: func(e *models.EntryCreate) { e.ImageURLs = models.StringList{"1", "2", "3", "4", "5"} },
		},
		{
			name:    "six images",
			mutate:  func(e *models.EntryCreate) { e.ImageURLs = models.StringList{"1", "2", "3", "4", "5", "6"} },
			wantErr: ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntryCreate()
			tt.mutate(&entry)

			err := v.Validate(context.Background(), entry)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EntryUpdate(t *testing.T) {
	v := NewJournalValidator()
	mood := models.Mood("bored")

	assert.ErrorIs(t, v.Validate(context.Background(), models.EntryUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(context.Background(), models.EntryUpdate{Mood: &mood}), ErrInvalidMood)
	assert.NoError(t, v.Validate(context.Background(), models.EntryUpdate{Content: models.Ptr("")}))
}

// ---------------------------------------------------------------------------
// Images
// ---------------------------------------------------------------------------

func TestValidate_Image(t *testing.T) {
	v := NewJournalValidator()

	tests := []struct {
		name    string
		file    models.ImageFile
		wantErr error
		wantMsg string
	}{
		{name: "png", file: image("a.png", "image/png", 1024)},
		{name: "jpeg with params", file: image("a.jpg", "image/jpeg; charset=binary", 1024)},
		{name: "exactly 5 MiB", file: image("a.png", "image/png", models.MaxImageSize)},
		{name: "pdf", file: image("a.pdf", "application/pdf", 10), wantErr: ErrNotAnImage, wantMsg: "File must be an image"},
		{name: "no type", file: image("a", "", 10), wantErr: ErrNotAnImage},
		{name: "6 MB", file: image("big.png", "image/png", 6_000_000), wantErr: ErrFileTooLarge, wantMsg: "File size must be less than 5MB"},
		{name: "empty", file: models.ImageFile{Name: "a.png", ContentType: "image/png"}, wantErr: ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_ImageBatch(t *testing.T) {
	v := NewJournalValidator()
	ok := image("a.png", "image/png", 10)

	t.Run("cap counts existing images", func(t *testing.T) {
		err := v.Validate(context.Background(), ImageBatch{Existing: 4, Files: []models.ImageFile{ok, ok}})
		assert.ErrorIs(t, err, ErrTooManyImages)
		assert.EqualError(t, err, "You can only upload up to 5 images per memory.")
	})

	t.Run("fills up to the cap", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), ImageBatch{Existing: 3, Files: []models.ImageFile{ok, ok}}))
	})

	t.Run("names the bad file", func(t *testing.T) {
		bad := image("notes.txt", "text/plain", 10)
		err := v.Validate(context.Background(), ImageBatch{Files: []models.ImageFile{ok, bad}})
		assert.ErrorIs(t, err, ErrNotAnImage)
		assert.Contains(t, err.Error(), "notes.txt")
	})
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, IsImageContentType("image/webp"))
	assert.False(t, IsImageContentType("imagex/png"))
	assert.False(t, IsImageContentType("not a type;;"))
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewJournalValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.ProfileUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Website: models.Ptr("")}))
}

func TestMessage(t *testing.T) {
	v := NewJournalValidator()
	err := v.Validate(context.Background(), ImageBatch{Files: []models.ImageFile{image("x.txt", "text/plain", 1)}})

	msg, ok := Message(err)
	require.True(t, ok)
	assert.Equal(t, "File must be an image", msg)

	_, ok = Message(ErrUnsupportedType)
	assert.False(t, ok)
}
