package tui

import (
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

type loginResultMsg struct {
	session models.Session
	err     error
}

type countsLoadedMsg struct {
	trips    int
	memories int
	err      error
}

type tripsLoadedMsg struct {
	trips []models.Trip
	err   error
}

type entriesLoadedMsg struct {
	tripID  string
	entries []models.TripEntry
	err     error
}

type deletedMsg struct {
	title string
	err   error
}

// sessionRefreshedMsg and sessionExpiredMsg come from the keep-alive job.
type sessionRefreshedMsg struct {
	session models.Session
}

type sessionExpiredMsg struct{}

// busEventMsg carries an event of the signed-in user from the local bus.
type busEventMsg struct {
	event synchronizer.Event
}

type copiedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}
