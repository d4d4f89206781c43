package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

type sessionCtxKey struct{}

// sessionFrom returns the session attached by withSession or
// withOptionalSession.
func sessionFrom(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(models.Session)
	return s, ok
}

// withSession loads the session of the cookie and redirects to /login when
// there is none. The event stream answers 401 instead of redirecting.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, err := h.attachSession(w, r)
		if err != nil {
			if r.URL.Path == "/events" {
				utils.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withOptionalSession attaches the session when there is one.
func (h *Handler) withOptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, _ = h.attachSession(w, r)
		next.ServeHTTP(w, r)
	})
}

// attachSession resolves the session cookie and returns the request with the
// session, the caller identity, its profile state and a user_id log field in
// the context. A cookie that no longer resolves is cleared.
func (h *Handler) attachSession(w http.ResponseWriter, r *http.Request) (*http.Request, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, err := h.sessionIDFromRequest(r)
	if err != nil {
		if !errors.Is(err, ErrNoSessionCookie) {
			log.Warn().Err(err).Msg("rejected session cookie")
			h.clearSessionCookie(w)
		}
		return r, err
	}

	session, err := h.services.AuthService.Session(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			h.clearSessionCookie(w)
			h.profiles.Drop(sessionID)
		} else {
			log.Err(err).Msg("session lookup failed")
		}
		return r, err
	}

	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", session.UserID())
	})

	ctx = l.WithContext(ctx)
	ctx = context.WithValue(ctx, sessionCtxKey{}, session)
	ctx = utils.WithUser(ctx, session.UserID(), session.AccessToken)
	ctx = synchronizer.WithProfileState(ctx, h.profiles.State(session.ID))

	return r.WithContext(ctx), nil
}
