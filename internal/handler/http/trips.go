package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/models"
)

type tripFormView struct {
	Form   tripForm
	Action string
	Submit string
	TripID string
}

type tripDetailView struct {
	Trip    models.Trip
	Entries []models.TripEntry
	Own     bool
	Form    entryForm
}

func (h *Handler) tripList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.services.TripService.ListUserTrips(ctx, "")
	pd := h.newPage(w, r, "My trips")
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("trips not loaded")
		pd.Alert = app.MsgLoadFailed
	}
	pd.Data = trips
	h.render(w, r, http.StatusOK, "trips", pd)
}

func (h *Handler) createTripPage(w http.ResponseWriter, r *http.Request) {
	pd := h.newPage(w, r, "Create trip")
	pd.Data = tripFormView{
		Form:   tripForm{IsPublic: true, Status: string(models.TripCompleted)},
		Action: "/dashboard/create-trip",
		Submit: "Create trip",
	}
	h.render(w, r, http.StatusOK, "trip_form", pd)
}

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	view := tripFormView{Action: "/dashboard/create-trip", Submit: "Create trip"}

	form, err := parseTripForm(r)
	if err != nil {
		h.renderTripForm(w, r, "Create trip", view, err, app.MsgFailedCreateTrip)
		return
	}
	view.Form = form

	create := form.create()
	if err = h.validator.Validate(ctx, create); err != nil {
		h.renderTripForm(w, r, "Create trip", view, err, app.MsgFailedCreateTrip)
		return
	}

	trip, err := h.services.TripService.CreateTrip(ctx, create)
	if err != nil || trip == nil {
		log.Err(err).Msg("trip not created")
		h.renderTripForm(w, r, "Create trip", view, err, app.MsgFailedCreateTrip)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard/trips/"+trip.ID, flashNotice, app.MsgTripCreated)
}

// tripDetail shows a trip with its memories and the form to add one. Trips
// of other users are shown read-only when public.
func (h *Handler) tripDetail(w http.ResponseWriter, r *http.Request) {
	trip, own, ok := h.visibleTrip(w, r, "/dashboard")
	if !ok {
		return
	}

	view := tripDetailView{
		Trip: *trip,
		Own:  own,
		Form: newEntryForm(),
	}
	h.renderTripDetail(w, r, http.StatusOK, view, "")
}

func (h *Handler) editTripPage(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.ownTrip(w, r, "/dashboard/trips")
	if !ok {
		return
	}

	pd := h.newPage(w, r, "Edit trip")
	pd.Data = tripFormView{
		Form:   tripFormFrom(trip),
		Action: "/dashboard/trips/" + trip.ID + "/edit",
		Submit: "Save changes",
		TripID: trip.ID,
	}
	h.render(w, r, http.StatusOK, "trip_form", pd)
}

func (h *Handler) editTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	view := tripFormView{Action: "/dashboard/trips/" + id + "/edit", Submit: "Save changes", TripID: id}

	form, err := parseTripForm(r)
	if err != nil {
		h.renderTripForm(w, r, "Edit trip", view, err, app.MsgFailedUpdateTrip)
		return
	}
	view.Form = form

	update := form.update()
	if err = h.validator.Validate(ctx, update); err != nil {
		h.renderTripForm(w, r, "Edit trip", view, err, app.MsgFailedUpdateTrip)
		return
	}

	trip, err := h.services.TripService.UpdateTrip(ctx, id, update)
	if err != nil {
		log.Err(err).Str("trip_id", id).Msg("trip not updated")
		h.renderTripForm(w, r, "Edit trip", view, err, app.MsgFailedUpdateTrip)
		return
	}
	if trip == nil {
		log.Warn().Str("trip_id", id).Msg("trip not updated: no matching row")
		h.redirectWithFlash(w, r, "/dashboard/trips", flashError, app.MsgFailedUpdateTrip)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard/trips/"+trip.ID, flashNotice, app.MsgTripUpdated)
}

func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	deleted, err := h.services.TripService.DeleteTrip(ctx, id)
	if err != nil || !deleted {
		logger.FromRequest(r).Err(err).Str("trip_id", id).Bool("deleted", deleted).Msg("trip not deleted")
		msg := app.MsgFailedDeleteTrip
		if err != nil {
			msg = service.UserMessage(err, msg)
		}
		h.redirectWithFlash(w, r, "/dashboard/trips/"+id, flashError, msg)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard/trips", flashNotice, app.MsgTripDeleted)
}

// visibleTrip loads the trip of the {id} parameter for display. It
// redirects to fallback when the trip is missing or private to someone else.
func (h *Handler) visibleTrip(w http.ResponseWriter, r *http.Request, fallback string) (*models.Trip, bool, bool) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	session, _ := sessionFrom(ctx)

	trip, err := h.services.TripService.GetTrip(ctx, id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("trip_id", id).Msg("trip not loaded")
	}
	if trip == nil {
		http.Redirect(w, r, fallback, http.StatusSeeOther)
		return nil, false, false
	}

	own := trip.UserID == session.UserID()
	if !own && !trip.IsPublic {
		http.Redirect(w, r, fallback, http.StatusSeeOther)
		return nil, false, false
	}
	return trip, own, true
}

// ownTrip is visibleTrip for pages that change the trip.
func (h *Handler) ownTrip(w http.ResponseWriter, r *http.Request, fallback string) (*models.Trip, bool) {
	trip, own, ok := h.visibleTrip(w, r, fallback)
	if !ok {
		return nil, false
	}
	if !own {
		http.Redirect(w, r, fallback, http.StatusSeeOther)
		return nil, false
	}
	return trip, true
}

func (h *Handler) renderTripForm(w http.ResponseWriter, r *http.Request, title string, view tripFormView, err error, fallback string) {
	pd := h.newPage(w, r, title)
	pd.Alert = service.UserMessage(err, fallback)
	pd.Data = view
	h.render(w, r, statusFromError(err), "trip_form", pd)
}

// renderTripDetail loads the memories of view.Trip and renders the page.
func (h *Handler) renderTripDetail(w http.ResponseWriter, r *http.Request, status int, view tripDetailView, alert string) {
	entries, err := h.services.EntryService.ListTripEntries(r.Context(), view.Trip.ID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("trip_id", view.Trip.ID).Msg("memories not loaded")
		if alert == "" {
			alert = app.MsgLoadFailed
		}
	}
	view.Entries = entries

	pd := h.newPage(w, r, view.Trip.Title)
	pd.Alert = alert
	pd.Data = view
	h.render(w, r, status, "trip_detail", pd)
}
