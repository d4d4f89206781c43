// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// TripStatuses lists every accepted status in display order.
var TripStatuses = []TripStatus{TripPlanning, TripActive, TripCompleted, TripCancelled}

// Valid reports whether s is one of the known statuses.
func (s TripStatus) Valid() bool {
	for _, known := range TripStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Trip is a journey owned by a single user. UserID never changes after the
// trip is created.
type Trip struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	UserID string `json:"user_id"`

	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Destination   string     `json:"destination"`
	StartDate     Date       `json:"start_date"`
	EndDate       Date       `json:"end_date"`
	IsPublic      bool       `json:"is_public"`
	CoverImageURL *string    `json:"cover_image_url"`
	Status        TripStatus `json:"status"`
	Tags          StringList `json:"tags"`
	Budget        *float64   `json:"budget,omitempty"`
	Currency      *string    `json:"currency,omitempty"`
}

// TableName returns the name of the table holding trips.
func (Trip) TableName() string {
	return "trips"
}

// DateRange renders "May 1, 2024 - May 7, 2024".
func (t Trip) DateRange() string {
	return t.StartDate.Human() + " - " + t.EndDate.Human()
}

// TripCreate carries the fields a user submits on the create-trip form.
// IsPublic is accepted but ignored: every created trip is public.
type TripCreate struct {
	Title         string
	Description   *string
	Destination   string
	StartDate     Date
	EndDate       Date
	IsPublic      bool
	CoverImageURL *string
	Status        TripStatus
	Tags          StringList
	Budget        *float64
	Currency      *string
}

// TripUpdate is a partial update. Only non-nil fields are written.
type TripUpdate struct {
	Title         *string     `json:"title,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Destination   *string     `json:"destination,omitempty"`
	StartDate     *Date       `json:"start_date,omitempty"`
	EndDate       *Date       `json:"end_date,omitempty"`
	IsPublic      *bool       `json:"is_public,omitempty"`
	CoverImageURL *string     `json:"cover_image_url,omitempty"`
	Status        *TripStatus `json:"status,omitempty"`
	Tags          *StringList `json:"tags,omitempty"`
	Budget        *float64    `json:"budget,omitempty"`
	Currency      *string     `json:"currency,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the update carries no field besides the timestamp.
func (u TripUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Destination == nil &&
		u.StartDate == nil && u.EndDate == nil && u.IsPublic == nil &&
		u.CoverImageURL == nil && u.Status == nil && u.Tags == nil &&
		u.Budget == nil && u.Currency == nil
}
