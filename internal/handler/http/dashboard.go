package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/models"
)

type dashboardView struct {
	TripCount   int
	MemoryCount int
	Recent      []models.RecentMemory
}

// dashboard shows the trip and memory counts and the latest memories. A
// failed read leaves its part at zero and adds a banner.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).With().Str("func", "*Handler.dashboard").Logger()
	session, _ := sessionFrom(ctx)
	userID := session.UserID()

	var failed bool
	tripCount, err := h.services.TripService.CountUserTrips(ctx, userID)
	if err != nil {
		log.Err(err).Msg("trip count not loaded")
		failed = true
	}
	memoryCount, err := h.services.EntryService.CountUserMemories(ctx, userID)
	if err != nil {
		log.Err(err).Msg("memory count not loaded")
		failed = true
	}
	recent, err := h.services.EntryService.RecentMemories(ctx, userID, service.DefaultRecentLimit)
	if err != nil {
		log.Err(err).Msg("recent memories not loaded")
		failed = true
	}

	pd := h.newPage(w, r, "Dashboard")
	if failed {
		pd.Alert = app.MsgLoadFailed
	}
	pd.Data = dashboardView{
		TripCount:   tripCount,
		MemoryCount: memoryCount,
		Recent:      recent,
	}
	h.render(w, r, http.StatusOK, "dashboard", pd)
}
