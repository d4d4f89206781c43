package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

// profileEventName is the SSE event carrying navbar profile updates.
const profileEventName = "profile"

// heartbeatInterval keeps idle streams open through proxies.
var heartbeatInterval = 25 * time.Second

type profileEvent struct {
	Refetch bool                  `json:"refetch"`
	Profile *models.PublicProfile `json:"profile,omitempty"`
}

// events streams the caller's bus events and profile updates as Server-Sent
// Events until the client goes away.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := sessionFrom(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub := h.bus.Subscribe(synchronizer.DefaultBuffer, synchronizer.ForUser(session.UserID()))
	defer sub.Close()

	var profiles <-chan synchronizer.ProfileUpdate
	if st, ok := synchronizer.ProfileStateFrom(ctx); ok {
		ch, cancel := st.Subscribe()
		defer cancel()
		profiles = ch
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "retry: 5000\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	log.Debug().Msg("event stream opened")
	defer log.Debug().Msg("event stream closed")

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := writeEvent(w, event.Kind(), event); err != nil {
				log.Err(err).Str("kind", event.Kind()).Msg("event not sent")
				return
			}
		case update, ok := <-profiles:
			if !ok {
				profiles = nil
				continue
			}
			payload := profileEvent{Refetch: update.Refetch}
			if update.Profile != nil {
				user := session.User
				p := models.NewPublicProfile(update.Profile, &user)
				payload.Profile = &p
			}
			if err := writeEvent(w, profileEventName, payload); err != nil {
				log.Err(err).Msg("profile event not sent")
				return
			}
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, name string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, b)
	return err
}
