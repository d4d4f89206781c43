package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/models"
)

type entryFormView struct {
	Trip   models.Trip
	Entry  models.TripEntry
	Form   entryForm
	Action string
}

// newEntryForm is the empty memory form: today, happy.
func newEntryForm() entryForm {
	return entryForm{
		EntryDate: time.Now().UTC().Format(models.DateLayout),
		Mood:      string(models.MoodHappy),
	}
}

// createEntry adds a memory to a trip. The form is validated before any
// photo is stored, and photos are stored before the memory is written.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trip, ok := h.ownTrip(w, r, "/dashboard")
	if !ok {
		return
	}
	view := tripDetailView{Trip: *trip, Own: true}

	form, files, closeFiles, err := parseEntryForm(w, r)
	defer closeFiles()
	if err != nil {
		view.Form = newEntryForm()
		h.renderTripDetail(w, r, statusFromError(err), view, service.UserMessage(err, app.MsgFailedCreateMemory))
		return
	}
	view.Form = form

	create := form.create()
	if err = h.validator.Validate(ctx, create); err != nil {
		h.renderTripDetail(w, r, statusFromError(err), view, service.UserMessage(err, app.MsgFailedCreateMemory))
		return
	}

	if len(files) > 0 {
		urls, err := h.services.StorageService.UploadEntryPhotos(ctx, trip.ID, 0, files)
		if err != nil {
			log.Err(err).Str("trip_id", trip.ID).Msg("memory photos not stored")
			h.renderTripDetail(w, r, statusFromError(err), view, service.UserMessage(err, app.MsgFailedCreateMemory))
			return
		}
		create.ImageURLs = urls
	}

	entry, err := h.services.EntryService.CreateEntry(ctx, trip.ID, create)
	if err != nil || entry == nil {
		log.Err(err).Str("trip_id", trip.ID).Msg("memory not created")
		h.renderTripDetail(w, r, statusFromError(err), view, service.UserMessage(err, app.MsgFailedCreateMemory))
		return
	}

	h.redirectWithFlash(w, r, "/dashboard/trips/"+trip.ID, flashNotice, app.MsgMemoryCreated)
}

func (h *Handler) editEntryPage(w http.ResponseWriter, r *http.Request) {
	trip, entry, ok := h.ownEntry(w, r)
	if !ok {
		return
	}

	pd := h.newPage(w, r, "Edit memory")
	pd.Data = entryFormView{
		Trip:   *trip,
		Entry:  *entry,
		Form:   entryFormFrom(entry),
		Action: "/dashboard/trips/" + trip.ID + "/entries/" + entry.ID + "/edit",
	}
	h.render(w, r, http.StatusOK, "entry_form", pd)
}

// editEntry updates a memory. Images not in keep_images are detached; new
// photos are appended after the kept ones.
func (h *Handler) editEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trip, entry, ok := h.ownEntry(w, r)
	if !ok {
		return
	}
	view := entryFormView{
		Trip:   *trip,
		Entry:  *entry,
		Action: "/dashboard/trips/" + trip.ID + "/entries/" + entry.ID + "/edit",
	}

	form, files, closeFiles, err := parseEntryForm(w, r)
	defer closeFiles()
	if err != nil {
		view.Form = entryFormFrom(entry)
		h.renderEntryForm(w, r, view, err)
		return
	}
	view.Form = form

	kept := keptImages(entry.ImageURLs, form.Keep)
	update := form.update()
	update.ImageURLs = &kept
	if err = h.validator.Validate(ctx, update); err != nil {
		h.renderEntryForm(w, r, view, err)
		return
	}

	if len(files) > 0 {
		urls, err := h.services.StorageService.UploadEntryPhotos(ctx, trip.ID, len(kept), files)
		if err != nil {
			log.Err(err).Str("entry_id", entry.ID).Msg("memory photos not stored")
			h.renderEntryForm(w, r, view, err)
			return
		}
		images := append(kept, urls...)
		update.ImageURLs = &images
	}

	updated, err := h.services.EntryService.UpdateEntry(ctx, entry.ID, update)
	if err != nil {
		log.Err(err).Str("entry_id", entry.ID).Msg("memory not updated")
		h.renderEntryForm(w, r, view, err)
		return
	}
	if updated == nil {
		log.Warn().Str("entry_id", entry.ID).Msg("memory not updated: no matching row")
		h.redirectWithFlash(w, r, "/dashboard/trips/"+trip.ID, flashError, app.MsgFailedUpdateMemory)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard/trips/"+trip.ID, flashNotice, app.MsgMemoryUpdated)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tripID := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	back := "/dashboard/trips/" + tripID

	deleted, err := h.services.EntryService.DeleteEntry(ctx, entryID)
	if err != nil || !deleted {
		logger.FromRequest(r).Err(err).Str("entry_id", entryID).Bool("deleted", deleted).Msg("memory not deleted")
		msg := app.MsgFailedDeleteMemory
		if err != nil {
			msg = service.UserMessage(err, msg)
		}
		h.redirectWithFlash(w, r, back, flashError, msg)
		return
	}

	h.redirectWithFlash(w, r, back, flashNotice, app.MsgMemoryDeleted)
}

// ownEntry loads the trip and memory of the route for editing. Anything that
// does not belong to the caller sends them back to the trip page.
func (h *Handler) ownEntry(w http.ResponseWriter, r *http.Request) (*models.Trip, *models.TripEntry, bool) {
	ctx := r.Context()
	entryID := chi.URLParam(r, "entryID")

	trip, ok := h.ownTrip(w, r, "/dashboard/trips")
	if !ok {
		return nil, nil, false
	}

	entry, err := h.services.EntryService.GetEntry(ctx, entryID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("entry_id", entryID).Msg("memory not loaded")
	}
	if entry == nil || entry.TripID != trip.ID {
		http.Redirect(w, r, "/dashboard/trips/"+trip.ID, http.StatusSeeOther)
		return nil, nil, false
	}
	return trip, entry, true
}

func (h *Handler) renderEntryForm(w http.ResponseWriter, r *http.Request, view entryFormView, err error) {
	pd := h.newPage(w, r, "Edit memory")
	pd.Alert = service.UserMessage(err, app.MsgFailedUpdateMemory)
	pd.Data = view
	h.render(w, r, statusFromError(err), "entry_form", pd)
}

// keptImages returns the current images listed in keep, in their current
// order. Unknown URLs are ignored.
func keptImages(current models.StringList, keep []string) models.StringList {
	out := models.StringList{}
	for _, url := range current {
		for _, k := range keep {
			if k == url {
				out = append(out, url)
				break
			}
		}
	}
	return out
}
