package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-journal/internal/mock"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

type browserFixture struct {
	m       browserModel
	trips   *mock.MockTripService
	entries *mock.MockEntryService
}

func newBrowserFixture(t *testing.T) *browserFixture {
	ctrl := gomock.NewController(t)
	trips := mock.NewMockTripService(ctrl)
	entries := mock.NewMockEntryService(ctrl)

	services := &service.Services{TripService: trips, EntryService: entries}
	session := models.Session{
		ID:          "s1",
		AccessToken: "token-1",
		User:        models.User{ID: "u1", Email: "ana@example.com"},
	}

	return &browserFixture{
		m:       newBrowserModel(context.Background(), services, session, models.AppBuildInfo{}),
		trips:   trips,
		entries: entries,
	}
}

// send applies msg and returns the command without running it.
func (f *browserFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.m.Update(msg)
	f.m = next.(browserModel)
	return cmd
}

// run feeds back every message cmd produces. Commands returned by those
// messages are not run, so timers never fire.
func (f *browserFixture) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range drain(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		f.send(t, msg)
	}
}

func sampleTrips() []models.Trip {
	return []models.Trip{
		{ID: "t1", Title: "Lisbon", Destination: "Portugal", Status: models.TripCompleted,
			StartDate: models.NewDate(2024, 5, 1), EndDate: models.NewDate(2024, 5, 7),
			Tags: models.StringList{"food"}, IsPublic: true},
		{ID: "t2", Title: "Kyoto", Destination: "Japan", Status: models.TripStatus("planned"),
			StartDate: models.NewDate(2025, 3, 1), EndDate: models.NewDate(2025, 3, 9)},
	}
}

func sampleEntries() []models.TripEntry {
	return []models.TripEntry{
		{ID: "e1", TripID: "t1", Title: "Sunset", EntryDate: models.NewDate(2024, 5, 2), Mood: models.MoodExcited,
			Notes: models.Notes{"tram 28"}, ImageURLs: models.StringList{"https://cdn/a.jpg", "https://cdn/b.jpg"}},
		{ID: "e2", TripID: "t1", Title: "Museum", EntryDate: models.NewDate(2024, 5, 3), Mood: models.MoodNeutral},
	}
}

// loaded returns a fixture showing sampleTrips.
func loaded(t *testing.T) *browserFixture {
	f := newBrowserFixture(t)
	f.trips.EXPECT().CountUserTrips(gomock.Any(), "u1").Return(2, nil)
	f.entries.EXPECT().CountUserMemories(gomock.Any(), "u1").Return(5, nil)
	f.trips.EXPECT().ListUserTrips(gomock.Any(), "").DoAndReturn(func(ctx context.Context, _ string) ([]models.Trip, error) {
		userID, ok := utils.GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "u1", userID, "services see the signed-in caller")
		return sampleTrips(), nil
	})

	f.run(t, f.m.Init())
	return f
}

func TestBrowser_InitLoadsTripsAndCounts(t *testing.T) {
	f := loaded(t)

	assert.False(t, f.m.loading)
	assert.Equal(t, 2, f.m.tripCount)
	assert.Equal(t, 5, f.m.memoryCount)

	view := f.m.View()
	assert.Contains(t, view, "ana@example.com  ·  2 trips  ·  5 memories")
	assert.Contains(t, view, "Lisbon")
	assert.Contains(t, view, "Kyoto")
	assert.Contains(t, view, "[private]")
	assert.Contains(t, view, "#food")
}

func TestBrowser_LoadFailureShowsOverlay(t *testing.T) {
	f := newBrowserFixture(t)

	f.send(t, tripsLoadedMsg{err: errors.New("backend down")})
	assert.True(t, f.m.showError)
	assert.Contains(t, f.m.View(), "backend down")

	f.send(t, keyMsg("enter"))
	assert.False(t, f.m.showError)
}

func TestBrowser_CountsFailureIsAStatus(t *testing.T) {
	f := newBrowserFixture(t)

	f.send(t, countsLoadedMsg{err: errors.New("timeout")})
	assert.False(t, f.m.showError)
	assert.Contains(t, f.m.status, "Counts unavailable")
}

func TestBrowser_NavigatesToViewerAndBack(t *testing.T) {
	f := loaded(t)
	f.entries.EXPECT().ListTripEntries(gomock.Any(), "t1").Return(sampleEntries(), nil)

	f.run(t, f.send(t, keyMsg("enter")))
	require.Equal(t, screenEntries, f.m.screen)
	assert.Contains(t, f.m.View(), "MEMORIES · Lisbon")
	assert.Contains(t, f.m.View(), "Sunset")
	assert.Contains(t, f.m.View(), "(2 photos)")

	f.send(t, keyMsg("enter"))
	require.Equal(t, screenViewer, f.m.screen)
	view := f.m.View()
	assert.Contains(t, view, "SUNSET")
	assert.Contains(t, view, "• tram 28")
	assert.Contains(t, view, "Photo 1 / 2")
	assert.Contains(t, view, "https://cdn/a.jpg")

	f.send(t, keyMsg("right"))
	assert.Contains(t, f.m.View(), "https://cdn/b.jpg")
	f.send(t, keyMsg("right"))
	assert.Contains(t, f.m.View(), "Photo 1 / 2", "wraps around")
	f.send(t, keyMsg("left"))
	assert.Contains(t, f.m.View(), "Photo 2 / 2")

	f.send(t, keyMsg("esc"))
	assert.Equal(t, screenEntries, f.m.screen)
	f.send(t, keyMsg("esc"))
	assert.Equal(t, screenTrips, f.m.screen)
	assert.Empty(t, f.m.entriesTrip)
}

func TestBrowser_IgnoresStaleEntries(t *testing.T) {
	f := loaded(t)
	f.m.screen = screenEntries
	f.m.entriesTrip = "t2"

	f.send(t, entriesLoadedMsg{tripID: "t1", entries: sampleEntries()})
	assert.Empty(t, f.m.entries)
}

func TestBrowser_CopiesPhotoURL(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWrite = prev })

	f := loaded(t)
	f.m.screen = screenViewer
	f.m.entries = sampleEntries()
	f.m.viewer = newCarousel(f.m.entries[0])

	cmd := f.send(t, keyMsg("c"))
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	f.send(t, msgs[0])

	assert.Equal(t, "https://cdn/a.jpg", copied)
	assert.Contains(t, f.m.status, "Copied https://cdn/a.jpg")
}

func TestBrowser_CopyWithoutPhotos(t *testing.T) {
	f := loaded(t)
	f.m.screen = screenViewer
	f.m.entries = sampleEntries()[1:]
	f.m.viewer = newCarousel(f.m.entries[0])

	assert.Nil(t, f.send(t, keyMsg("c")))
	assert.Contains(t, f.m.View(), "No photos")
}

func TestBrowser_DeleteTripAsksFirst(t *testing.T) {
	f := loaded(t)

	f.send(t, keyMsg("down"))
	f.send(t, keyMsg("d"))
	require.True(t, f.m.showConfirm)
	assert.Contains(t, f.m.View(), `Delete "Kyoto"?`)

	// n cancels
	assert.Nil(t, f.send(t, keyMsg("n")))
	assert.False(t, f.m.showConfirm)

	f.send(t, keyMsg("d"))
	f.trips.EXPECT().DeleteTrip(gomock.Any(), "t2").Return(true, nil)
	cmd := f.send(t, keyMsg("y"))

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	f.send(t, msgs[0])
	assert.Equal(t, "Deleted Kyoto", f.m.status)
}

func TestBrowser_DeleteEntryFailure(t *testing.T) {
	f := loaded(t)
	f.m.screen = screenEntries
	f.m.entriesTrip = "t1"
	f.m.entries = sampleEntries()

	f.send(t, keyMsg("d"))
	f.entries.EXPECT().DeleteEntry(gomock.Any(), "e1").Return(false, errors.New("forbidden"))

	f.run(t, f.send(t, keyMsg("y")))
	assert.True(t, f.m.showError)
	assert.Contains(t, f.m.errorOverlay.message, "forbidden")
}

func TestBrowser_ReloadsOnChangeEvents(t *testing.T) {
	f := loaded(t)
	f.m.screen = screenEntries
	f.m.entriesTrip = "t1"

	f.trips.EXPECT().CountUserTrips(gomock.Any(), "u1").Return(2, nil)
	f.entries.EXPECT().CountUserMemories(gomock.Any(), "u1").Return(4, nil)
	f.entries.EXPECT().ListTripEntries(gomock.Any(), "t1").Return(sampleEntries()[1:], nil)

	f.run(t, f.send(t, busEventMsg{event: synchronizer.MemoryChanged{EntryID: "e1", TripID: "t1", UserID: "u1"}}))
	assert.Equal(t, 4, f.m.memoryCount)
	require.Len(t, f.m.entries, 1)
	assert.Equal(t, "e2", f.m.entries[0].ID)

	// memories of another trip only refresh the counts
	f.trips.EXPECT().CountUserTrips(gomock.Any(), "u1").Return(2, nil)
	f.entries.EXPECT().CountUserMemories(gomock.Any(), "u1").Return(5, nil)
	f.run(t, f.send(t, busEventMsg{event: synchronizer.MemoryChanged{EntryID: "e9", TripID: "t2", UserID: "u1"}}))
	assert.Equal(t, 5, f.m.memoryCount)

	f.trips.EXPECT().CountUserTrips(gomock.Any(), "u1").Return(1, nil)
	f.entries.EXPECT().CountUserMemories(gomock.Any(), "u1").Return(5, nil)
	f.trips.EXPECT().ListUserTrips(gomock.Any(), "").Return(sampleTrips()[:1], nil)
	f.run(t, f.send(t, busEventMsg{event: synchronizer.TripChanged{TripID: "t2", UserID: "u1"}}))
	assert.Equal(t, 1, f.m.tripCount)
	assert.Len(t, f.m.trips, 1)

	assert.Nil(t, f.send(t, busEventMsg{event: synchronizer.SessionChanged{UserID: "u1", SignedIn: true}}))
}

func TestBrowser_SessionLifecycle(t *testing.T) {
	f := newBrowserFixture(t)

	refreshed := f.m.session
	refreshed.AccessToken = "token-2"
	f.send(t, sessionRefreshedMsg{session: refreshed})

	got, ok := utils.GetAccessTokenFromContext(f.m.userCtx())
	assert.True(t, ok)
	assert.Equal(t, "token-2", got)

	cmd := f.send(t, sessionExpiredMsg{})
	assert.True(t, f.m.expired)
	assert.True(t, f.m.logout)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBrowser_QuitAndSignOutKeys(t *testing.T) {
	tests := []struct {
		key        string
		logout     bool
		quitByUser bool
	}{
		{key: "o", logout: true},
		{key: "q", quitByUser: true},
		{key: "ctrl+c", quitByUser: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f := newBrowserFixture(t)
			f.m.loading = false

			cmd := f.send(t, keyMsg(tt.key))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, tt.logout, f.m.logout)
			assert.Equal(t, tt.quitByUser, f.m.quitByUser)
		})
	}
}

func TestBrowser_BuildInfoWindow(t *testing.T) {
	f := newBrowserFixture(t)
	f.m.buildInfo = models.NewAppBuildInfo("2.1.0", "", "")

	f.send(t, keyMsg("v"))
	view := f.m.View()
	assert.Contains(t, view, "Version: 2.1.0")
	assert.Contains(t, view, "Date: N/A")

	f.send(t, keyMsg("esc"))
	assert.False(t, f.m.showBuildInfo)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 1, clamp(1, 3))
	assert.Equal(t, 0, clamp(4, 0))
}
