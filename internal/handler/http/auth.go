package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

type authForm struct {
	Email string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionFrom(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	pd := h.newPage(w, r, "Sign in")
	pd.Data = authForm{}
	h.render(w, r, http.StatusOK, "login", pd)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		h.renderAuthError(w, r, "login", "Sign in", authForm{}, http.StatusBadRequest, app.MsgLoginFailed)
		return
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	session, err := h.services.AuthService.SignIn(ctx, creds)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("sign in failed")
		h.renderAuthError(w, r, "login", "Sign in", authForm{Email: creds.Email}, statusFromError(err), service.UserMessage(err, app.MsgLoginFailed))
		return
	}

	h.startSession(w, r, session)
	log.Info().Str("user_id", session.UserID()).Msg("user signed in")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionFrom(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	pd := h.newPage(w, r, "Create account")
	pd.Data = authForm{}
	h.render(w, r, http.StatusOK, "register", pd)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid register form")
		h.renderAuthError(w, r, "register", "Create account", authForm{}, http.StatusBadRequest, app.MsgRegisterFailed)
		return
	}

	form := authForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
	password := r.PostFormValue("password")
	if password != r.PostFormValue("confirm_password") {
		h.renderAuthError(w, r, "register", "Create account", form, http.StatusUnprocessableEntity, app.MsgPasswordsDoNotMatch)
		return
	}

	session, err := h.services.AuthService.SignUp(ctx, models.Credentials{Email: form.Email, Password: password})
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("sign up failed")
		h.renderAuthError(w, r, "register", "Create account", form, statusFromError(err), service.UserMessage(err, app.MsgRegisterFailed))
		return
	}

	if session == nil {
		pd := h.newPage(w, r, "Create account")
		pd.Flash = &flash{Kind: flashNotice, Text: app.MsgCheckEmail}
		pd.Data = authForm{}
		h.render(w, r, http.StatusOK, "register", pd)
		return
	}

	h.startSession(w, r, *session)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// authCallback is the target of the confirmation email. It verifies the
// token, creates the profile and signs the user in.
func (h *Handler) authCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenHash := r.URL.Query().Get("token_hash")
	if tokenHash == "" {
		if _, ok := sessionFrom(ctx); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, err := h.services.AuthService.ConfirmEmail(ctx, tokenHash, r.URL.Query().Get("type"))
	if err != nil {
		log.Err(err).Msg("email confirmation failed")
		pd := h.newPage(w, r, "Confirm email")
		pd.Alert = app.MsgConfirmationFailed
		h.render(w, r, http.StatusBadRequest, "message", pd)
		return
	}

	h.startSession(w, r, session)
	h.redirectWithFlash(w, r, "/dashboard", flashNotice, app.MsgEmailConfirmed)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if session, ok := sessionFrom(ctx); ok {
		if err := h.services.AuthService.SignOut(ctx, session.ID); err != nil {
			log.Err(err).Msg("sign out failed")
		}
		h.profiles.Drop(session.ID)
	}

	h.clearSessionCookie(w)
	h.redirectWithFlash(w, r, "/login", flashNotice, app.MsgSignedOut)
}

// startSession sets the cookie and makes sure the profile exists. A profile
// failure does not block the sign in; the navbar falls back to the account.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, session models.Session) {
	ctx := utils.WithUser(r.Context(), session.UserID(), session.AccessToken)

	h.setSessionCookie(w, session.ID)

	profile, err := h.services.ProfileService.EnsureProfile(ctx, session.User)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", session.UserID()).Msg("profile not ensured on sign in")
		return
	}
	if profile != nil {
		h.profiles.State(session.ID).Update(profile)
	}
}

func (h *Handler) renderAuthError(w http.ResponseWriter, r *http.Request, name, title string, form authForm, status int, msg string) {
	pd := h.newPage(w, r, title)
	pd.Alert = msg
	pd.Data = form
	h.render(w, r, status, name, pd)
}
