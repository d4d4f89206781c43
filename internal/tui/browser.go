package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

type screen int

const (
	screenTrips screen = iota
	screenEntries
	screenViewer
)

const statusTimeout = 3 * time.Second

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

type pendingDelete struct {
	tripID  string
	entryID string
	title   string
}

// browserModel is the signed-in part of the client: the trip list, the
// memories of a trip and the memory viewer.
type browserModel struct {
	ctx       context.Context
	services  *service.Services
	buildInfo models.AppBuildInfo
	session   models.Session

	screen screen

	trips   []models.Trip
	tripIdx int

	entries     []models.TripEntry
	entriesTrip string
	entryIdx    int

	viewer carousel

	tripCount   int
	memoryCount int

	loading bool
	spinner spinner.Model
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pending       pendingDelete
	showBuildInfo bool

	logout     bool
	expired    bool
	quitByUser bool
}

func newBrowserModel(ctx context.Context, services *service.Services, session models.Session, buildInfo models.AppBuildInfo) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		session:   session,
		screen:    screenTrips,
		loading:   true,
		spinner:   s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCounts(), m.cmdLoadTrips())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case countsLoadedMsg:
		if msg.err != nil {
			m.status = "Counts unavailable: " + humanizeError(msg.err)
			return m, nil
		}
		m.tripCount, m.memoryCount = msg.trips, msg.memories
		return m, nil

	case tripsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.trips = msg.trips
		m.tripIdx = clamp(m.tripIdx, len(m.trips))
		return m, nil

	case entriesLoadedMsg:
		if msg.tripID != m.entriesTrip {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.entries = msg.entries
		m.entryIdx = clamp(m.entryIdx, len(m.entries))
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		// lists are reloaded by the change event
		m.status = "Deleted " + msg.title
		return m, clearStatusAfter()

	case busEventMsg:
		return m.onEvent(msg.event)

	case sessionRefreshedMsg:
		m.session = msg.session
		return m, nil

	case sessionExpiredMsg:
		m.expired = true
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + fitText(msg.url, 48)
		}
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m browserModel) onEvent(event synchronizer.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case synchronizer.TripChanged:
		return m, tea.Batch(m.cmdLoadCounts(), m.cmdLoadTrips())
	case synchronizer.MemoryChanged:
		cmds := []tea.Cmd{m.cmdLoadCounts()}
		if e.TripID == m.entriesTrip {
			cmds = append(cmds, m.cmdLoadEntries(e.TripID))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m browserModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.pending)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pending = pendingDelete{}
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenViewer:
		return m.onViewerKey(msg)
	case screenEntries:
		return m.onEntriesKey(msg)
	default:
		return m.onTripsKey(msg)
	}
}

func (m browserModel) onTripsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		m.tripIdx = clamp(m.tripIdx-1, len(m.trips))
	case key.Matches(msg, keys.down):
		m.tripIdx = clamp(m.tripIdx+1, len(m.trips))
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCounts(), m.cmdLoadTrips())
	case key.Matches(msg, keys.delete):
		if trip, ok := m.currentTrip(); ok {
			m.pending = pendingDelete{tripID: trip.ID, title: trip.Title}
			m.confirm.message = trip.Title
			m.showConfirm = true
		}
	case key.Matches(msg, keys.enter):
		trip, ok := m.currentTrip()
		if !ok {
			return m, nil
		}
		m.screen = screenEntries
		m.entriesTrip = trip.ID
		m.entries = nil
		m.entryIdx = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadEntries(trip.ID))
	}
	return m, nil
}

func (m browserModel) onEntriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenTrips
		m.entriesTrip = ""
		m.entries = nil
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.entryIdx = clamp(m.entryIdx-1, len(m.entries))
	case key.Matches(msg, keys.down):
		m.entryIdx = clamp(m.entryIdx+1, len(m.entries))
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadEntries(m.entriesTrip))
	case key.Matches(msg, keys.delete):
		if entry, ok := m.currentEntry(); ok {
			m.pending = pendingDelete{entryID: entry.ID, title: entry.Title}
			m.confirm.message = entry.Title
			m.showConfirm = true
		}
	case key.Matches(msg, keys.enter):
		if entry, ok := m.currentEntry(); ok {
			m.viewer = newCarousel(entry)
			m.screen = screenViewer
		}
	}
	return m, nil
}

func (m browserModel) onViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenEntries
	case key.Matches(msg, keys.left):
		m.viewer.prev()
	case key.Matches(msg, keys.right):
		m.viewer.next()
	case key.Matches(msg, keys.copy):
		if url, ok := m.viewer.current(); ok {
			return m, cmdCopy(url)
		}
	}
	return m, nil
}

func (m browserModel) withError(err error) browserModel {
	m.showError = true
	m.errorOverlay.message = humanizeError(err)
	return m
}

func (m browserModel) currentTrip() (models.Trip, bool) {
	if m.tripIdx < 0 || m.tripIdx >= len(m.trips) {
		return models.Trip{}, false
	}
	return m.trips[m.tripIdx], true
}

func (m browserModel) currentEntry() (models.TripEntry, bool) {
	if m.entryIdx < 0 || m.entryIdx >= len(m.entries) {
		return models.TripEntry{}, false
	}
	return m.entries[m.entryIdx], true
}

func (m browserModel) tripTitle(id string) string {
	for _, t := range m.trips {
		if t.ID == id {
			return t.Title
		}
	}
	return ""
}

// userCtx carries the signed-in caller to the services.
func (m browserModel) userCtx() context.Context {
	return utils.WithUser(m.ctx, m.session.UserID(), m.session.AccessToken)
}

// ---- commands ----

func (m browserModel) cmdLoadCounts() tea.Cmd {
	ctx, userID := m.userCtx(), m.session.UserID()
	trips, entries := m.services.TripService, m.services.EntryService

	return func() tea.Msg {
		tripCount, err := trips.CountUserTrips(ctx, userID)
		if err != nil {
			return countsLoadedMsg{err: err}
		}
		memoryCount, err := entries.CountUserMemories(ctx, userID)
		return countsLoadedMsg{trips: tripCount, memories: memoryCount, err: err}
	}
}

func (m browserModel) cmdLoadTrips() tea.Cmd {
	ctx, trips := m.userCtx(), m.services.TripService

	return func() tea.Msg {
		list, err := trips.ListUserTrips(ctx, "")
		return tripsLoadedMsg{trips: list, err: err}
	}
}

func (m browserModel) cmdLoadEntries(tripID string) tea.Cmd {
	ctx, entries := m.userCtx(), m.services.EntryService

	return func() tea.Msg {
		list, err := entries.ListTripEntries(ctx, tripID)
		return entriesLoadedMsg{tripID: tripID, entries: list, err: err}
	}
}

func (m browserModel) cmdDelete(p pendingDelete) tea.Cmd {
	ctx := m.userCtx()
	trips, entries := m.services.TripService, m.services.EntryService

	return func() tea.Msg {
		var err error
		if p.entryID != "" {
			_, err = entries.DeleteEntry(ctx, p.entryID)
		} else {
			_, err = trips.DeleteTrip(ctx, p.tripID)
		}
		return deletedMsg{title: p.title, err: err}
	}
}

func cmdCopy(url string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{url: url, err: clipboardWrite(url)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// clamp keeps a cursor inside a list of n items.
func clamp(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// ---- views ----

func (m browserModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var body, hotKeys, title string
	switch m.screen {
	case screenViewer:
		title, body = m.viewViewer()
		hotKeys = "←/→: photos │ c: copy url │ esc: close"
	case screenEntries:
		title, body = "MEMORIES · "+m.tripTitle(m.entriesTrip), m.viewEntries()
		hotKeys = "enter: open │ d: delete │ r: reload │ esc: back"
	default:
		title, body = "MY TRIPS", m.viewTrips()
		hotKeys = "enter: memories │ d: delete │ r: reload │ v: about │ o: sign out │ q: quit"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.status))
	}

	page := renderPage(title, b.String(), hotKeys)
	switch {
	case m.showError:
		return page + "\n" + m.errorOverlay.View()
	case m.showConfirm:
		return page + "\n" + m.confirm.View()
	}
	return page
}

// header shows who is signed in and the totals.
func (m browserModel) header() string {
	h := fmt.Sprintf("%s  ·  %d %s  ·  %d %s",
		m.session.User.Email,
		m.tripCount, plural(m.tripCount, "trip", "trips"),
		m.memoryCount, plural(m.memoryCount, "memory", "memories"),
	)
	if m.loading {
		h += "  " + m.spinner.View()
	}
	return h
}

func (m browserModel) viewTrips() string {
	if m.loading && len(m.trips) == 0 {
		return "Loading..."
	}
	if len(m.trips) == 0 {
		return "No trips yet. Create your first one on the web."
	}

	var b strings.Builder
	for i, t := range m.trips {
		cursor := "  "
		line := fmt.Sprintf("%s  %s  %s", fitText(t.Title, 32), fitText(t.Destination, 24), t.DateRange())
		if i == m.tripIdx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		if !t.IsPublic {
			b.WriteString("  [private]")
		}
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(string(t.Status))
		for _, tag := range t.Tags {
			b.WriteString(" ")
			b.WriteString(renderTag(tag))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m browserModel) viewEntries() string {
	if m.loading && len(m.entries) == 0 {
		return "Loading..."
	}
	if len(m.entries) == 0 {
		return "No memories in this trip yet."
	}

	var b strings.Builder
	for i, e := range m.entries {
		cursor := "  "
		line := fmt.Sprintf("%s %s  %s", e.Mood.Emoji(), e.EntryDate.Human(), fitText(e.Title, 40))
		if i == m.entryIdx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		if n := len(e.ImageURLs); n > 0 {
			b.WriteString(fmt.Sprintf("  (%d %s)", n, plural(n, "photo", "photos")))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m browserModel) viewViewer() (string, string) {
	entry, ok := m.currentEntry()
	if !ok {
		return "MEMORY", "-"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", entry.Mood.Emoji(), entry.EntryDate.Human()))
	b.WriteString("Location: ")
	b.WriteString(valueOrDash(entry.Location))
	b.WriteString("\n")

	if entry.Content != "" {
		b.WriteString("\n")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	if len(entry.Notes) > 0 {
		b.WriteString("\n")
		for _, n := range entry.Notes {
			b.WriteString("• ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	if len(entry.Tags) > 0 {
		b.WriteString("\n")
		for i, tag := range entry.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(renderTag(tag))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if url, ok := m.viewer.current(); ok {
		b.WriteString("Photo ")
		b.WriteString(m.viewer.position())
		b.WriteString("\n")
		b.WriteString(url)
	} else {
		b.WriteString("No photos")
	}

	return strings.ToUpper(entry.Title), b.String()
}
