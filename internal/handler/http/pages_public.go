package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", h.newPage(w, r, "Travel Journal"))
}

// staticPage serves a page without data, such as the legal pages.
func (h *Handler) staticPage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, name, h.newPage(w, r, title))
	}
}

// memoryCard is a memory as listed on profile pages.
type memoryCard struct {
	models.TripEntry
	TripTitle string
	Thumbnail string
	Emoji     string
}

func newMemoryCard(e models.TripEntry, tripTitle string) memoryCard {
	return memoryCard{
		TripEntry: e,
		TripTitle: tripTitle,
		Thumbnail: e.CoverImage(),
		Emoji:     e.Mood.Emoji(),
	}
}

type profileView struct {
	Profile  models.PublicProfile
	Trips    []models.Trip
	Memories []memoryCard
	Own      bool
}

// publicProfile shows the public trips of a user and their memories.
func (h *Handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var self bool
	if session, ok := sessionFrom(r.Context()); ok && session.UserID() == userID {
		self = true
	}

	view := h.loadProfileView(r, userID, nil, true)
	view.Own = self

	pd := h.newPage(w, r, view.Profile.Name)
	pd.Data = view
	h.render(w, r, http.StatusOK, "profile", pd)
}

// ownProfile is the signed-in user's profile as others see it, except that
// memories of private trips are listed too.
func (h *Handler) ownProfile(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())
	user := session.User

	view := h.loadProfileView(r, session.UserID(), &user, false)
	view.Own = true

	pd := h.newPage(w, r, "My profile")
	pd.Data = view
	h.render(w, r, http.StatusOK, "profile", pd)
}

// loadProfileView reads the profile, the trips and the flattened memories of
// userID. Failed reads are logged and shown as empty lists.
func (h *Handler) loadProfileView(r *http.Request, userID string, user *models.User, publicOnly bool) profileView {
	ctx := r.Context()
	log := logger.FromRequest(r).With().Str("func", "*Handler.loadProfileView").Str("profile_id", userID).Logger()

	profile, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Msg("profile not loaded")
	}

	var trips []models.Trip
	if publicOnly {
		trips, err = h.services.TripService.ListPublicTrips(ctx, userID)
	} else {
		trips, err = h.services.TripService.ListUserTrips(ctx, userID)
	}
	if err != nil {
		log.Err(err).Msg("trips not loaded")
	}

	view := profileView{
		Profile:  models.NewPublicProfile(profile, user),
		Trips:    []models.Trip{},
		Memories: []memoryCard{},
	}
	if view.Profile.UserID == "" {
		view.Profile.UserID = userID
	}

	for _, trip := range trips {
		if trip.IsPublic {
			view.Trips = append(view.Trips, trip)
		}

		entries, err := h.services.EntryService.ListTripEntries(ctx, trip.ID)
		if err != nil {
			log.Err(err).Str("trip_id", trip.ID).Msg("memories not loaded")
			continue
		}
		for _, e := range entries {
			view.Memories = append(view.Memories, newMemoryCard(e, trip.Title))
		}
	}

	return view
}
