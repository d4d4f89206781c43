// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/go-travel-journal/models"
)

// Field names accepted by JournalValidator.Validate to scope validation.
const (
	FieldTitle       = "title"
	FieldDestination = "destination"
	FieldDates       = "dates"
	FieldStatus      = "status"
	FieldBudget      = "budget"
	FieldEntryDate   = "entry_date"
	FieldMood        = "mood"
	FieldImages      = "images"
	FieldContentType = "content_type"
	FieldSize        = "size"
	FieldNotEmpty    = "not_empty"
)

// ImageBatch is a set of photos about to be attached to a memory that
// already holds Existing images.
type ImageBatch struct {
	Existing int
	Files    []models.ImageFile
}

// JournalValidator implements the Validator interface for trips, memories,
// images and profile edits.
//
// Value and pointer forms of every model are accepted. Optional field names
// restrict validation to a subset; without them the default set of the model
// is validated.
type JournalValidator struct {
}

// NewJournalValidator constructs a JournalValidator and returns it as the
// Validator interface.
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.TripCreate / *models.TripCreate
//   - models.TripUpdate / *models.TripUpdate
//   - models.EntryCreate / *models.EntryCreate
//   - models.EntryUpdate / *models.EntryUpdate
//   - models.ImageFile / *models.ImageFile
//   - ImageBatch / *ImageBatch
//   - models.ProfileUpdate / *models.ProfileUpdate
//
// Returns ErrUnsupportedType for anything else.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TripCreate:
		return v.validateTripCreate(ctx, value, fields...)
	case *models.TripCreate:
		return v.validateTripCreate(ctx, *value, fields...)

	case models.TripUpdate:
		return v.validateTripUpdate(ctx, value, fields...)
	case *models.TripUpdate:
		return v.validateTripUpdate(ctx, *value, fields...)

	case models.EntryCreate:
		return v.validateEntryCreate(ctx, value, fields...)
	case *models.EntryCreate:
		return v.validateEntryCreate(ctx, *value, fields...)

	case models.EntryUpdate:
		return v.validateEntryUpdate(ctx, value, fields...)
	case *models.EntryUpdate:
		return v.validateEntryUpdate(ctx, *value, fields...)

	case models.ImageFile:
		return v.validateImage(ctx, value, fields...)
	case *models.ImageFile:
		return v.validateImage(ctx, *value, fields...)

	case ImageBatch:
		return v.validateImageBatch(ctx, value, fields...)
	case *ImageBatch:
		return v.validateImageBatch(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateTripCreate(ctx context.Context, trip models.TripCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDestination, FieldDates, FieldStatus, FieldBudget}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(trip.Title) {
				return ErrTitleRequired
			}
		case FieldDestination:
			if isBlank(trip.Destination) {
				return ErrDestinationRequired
			}
		case FieldDates:
			if trip.StartDate.IsZero() {
				return ErrStartDateRequired
			}
			if trip.EndDate.IsZero() {
				return ErrEndDateRequired
			}
			if trip.EndDate.Before(trip.StartDate) {
				return ErrEndBeforeStart
			}
		case FieldStatus:
			// empty status is filled with the default later
			if trip.Status != "" && !trip.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldBudget:
			if trip.Budget != nil && *trip.Budget < 0 {
				return ErrNegativeBudget
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTripUpdate checks the fields an update carries. Date order can only
// be checked when both dates are part of the update.
func (v *JournalValidator) validateTripUpdate(ctx context.Context, update models.TripUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTitle, FieldDestination, FieldDates, FieldStatus, FieldBudget}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && isBlank(*update.Title) {
				return ErrTitleRequired
			}
		case FieldDestination:
			if update.Destination != nil && isBlank(*update.Destination) {
				return ErrDestinationRequired
			}
		case FieldDates:
			if update.StartDate != nil && update.StartDate.IsZero() {
				return ErrStartDateRequired
			}
			if update.EndDate != nil && update.EndDate.IsZero() {
				return ErrEndDateRequired
			}
			if update.StartDate != nil && update.EndDate != nil && update.EndDate.Before(*update.StartDate) {
				return ErrEndBeforeStart
			}
		case FieldStatus:
			if update.Status != nil && !update.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldBudget:
			if update.Budget != nil && *update.Budget < 0 {
				return ErrNegativeBudget
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateEntryCreate(ctx context.Context, entry models.EntryCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldEntryDate, FieldMood, FieldImages}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(entry.Title) {
				return ErrTitleRequired
			}
		case FieldEntryDate:
			if entry.EntryDate.IsZero() {
				return ErrEntryDateRequired
			}
		case FieldMood:
			// empty mood defaults to happy
			if entry.Mood != "" && !entry.Mood.Valid() {
				return ErrInvalidMood
			}
		case FieldImages:
			if len(entry.ImageURLs) > models.MaxEntryImages {
				return ErrTooManyImages
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateEntryUpdate(ctx context.Context, update models.EntryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTitle, FieldEntryDate, FieldMood, FieldImages}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && isBlank(*update.Title) {
				return ErrTitleRequired
			}
		case FieldEntryDate:
			if update.EntryDate != nil && update.EntryDate.IsZero() {
				return ErrEntryDateRequired
			}
		case FieldMood:
			if update.Mood != nil && !update.Mood.Valid() {
				return ErrInvalidMood
			}
		case FieldImages:
			if update.ImageURLs != nil && len(*update.ImageURLs) > models.MaxEntryImages {
				return ErrTooManyImages
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateImage(ctx context.Context, file models.ImageFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentType, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldContentType:
			if !IsImageContentType(file.ContentType) {
				return ErrNotAnImage
			}
		case FieldSize:
			if file.Size > models.MaxImageSize {
				return ErrFileTooLarge
			}
			if file.Size == 0 && file.Body == nil {
				return ErrEmptyFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateImageBatch checks the cap first, then every file, so nothing of the
// batch is uploaded when any part of it is invalid.
func (v *JournalValidator) validateImageBatch(ctx context.Context, batch ImageBatch, fields ...string) error {
	if batch.Existing+len(batch.Files) > models.MaxEntryImages {
		return ErrTooManyImages
	}

	for i, file := range batch.Files {
		if err := v.validateImage(ctx, file, fields...); err != nil {
			return fmt.Errorf("%s (file %d): %w", file.Name, i+1, err)
		}
	}

	return nil
}

func (v *JournalValidator) validateProfileUpdate(ctx context.Context, update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsImageContentType reports whether contentType is an image/* media type.
// Parameters such as charset are ignored.
func IsImageContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
