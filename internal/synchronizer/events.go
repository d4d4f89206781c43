// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synchronizer keeps independently rendered views consistent after a
// write.
//
// Two mechanisms live here:
//   - [Bus] is a typed publish/subscribe channel for domain events
//     ([TripChanged], [MemoryChanged], [SessionChanged]). Delivery is fire and
//     forget: a subscriber whose buffer is full misses the event and the
//     publisher never waits.
//   - [ProfileStore] holds one [ProfileState] per web session. A state carries
//     the shared profile value shown in the navbar and elsewhere and notifies
//     its subscribers when it is replaced or cleared.
//
// [RedisRelay] optionally forwards bus events between server instances.
package synchronizer

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/models"
)

// Event is one of TripChanged, MemoryChanged or SessionChanged. The set is
// closed: the unexported method keeps other packages from adding variants, so
// a type switch over the three cases is exhaustive.
type Event interface {
	// Kind is the stable name of the variant, used as the SSE event name and
	// on the relay wire.
	Kind() string
	// Owner is the id of the user whose data changed.
	Owner() string

	sealed()
}

// Event kinds.
const (
	KindTripChanged    = "trip_changed"
	KindMemoryChanged  = "memory_changed"
	KindSessionChanged = "session_changed"
)

// TripChanged is published after a trip was created, updated or deleted.
type TripChanged struct {
	TripID string `json:"trip_id"`
	UserID string `json:"user_id"`
}

// MemoryChanged is published after a memory was created, updated or deleted.
// Entry holds the stored record and is nil for deletions.
type MemoryChanged struct {
	EntryID string            `json:"entry_id"`
	TripID  string            `json:"trip_id"`
	UserID  string            `json:"user_id"`
	Entry   *models.TripEntry `json:"entry,omitempty"`
}

// SessionChanged is published on sign in and sign out.
type SessionChanged struct {
	UserID   string `json:"user_id"`
	SignedIn bool   `json:"signed_in"`
}

func (TripChanged) Kind() string    { return KindTripChanged }
func (MemoryChanged) Kind() string  { return KindMemoryChanged }
func (SessionChanged) Kind() string { return KindSessionChanged }

func (e TripChanged) Owner() string    { return e.UserID }
func (e MemoryChanged) Owner() string  { return e.UserID }
func (e SessionChanged) Owner() string { return e.UserID }

func (TripChanged) sealed()    {}
func (MemoryChanged) sealed()  {}
func (SessionChanged) sealed() {}

// DecodeEvent rebuilds an event from its kind and JSON payload.
func DecodeEvent(kind string, payload []byte) (Event, error) {
	switch kind {
	case KindTripChanged:
		var e TripChanged
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeEvent, err)
		}
		return e, nil
	case KindMemoryChanged:
		var e MemoryChanged
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeEvent, err)
		}
		return e, nil
	case KindSessionChanged:
		var e SessionChanged
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeEvent, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrDecodeEvent, kind)
	}
}
