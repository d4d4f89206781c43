package http

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

const flashCookieName = "tj_flash"

// Flash kinds. An error flash is rendered like an inline alert.
const (
	flashNotice = "notice"
	flashError  = "error"
)

type flash struct {
	Kind string
	Text string
}

func (f flash) IsError() bool { return f.Kind == flashError }

// signValue returns "payload.signature" with the signature taken over payload.
func (h *Handler) signValue(payload string) string {
	return payload + "." + utils.HashString(payload, h.cookieSecret)
}

func (h *Handler) verifyValue(value string) (string, error) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok || payload == "" {
		return "", ErrMalformedCookie
	}
	if !utils.EqualHash(payload, sig, h.cookieSecret) {
		return "", ErrInvalidCookieSignature
	}
	return payload, nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    h.signValue(sessionID),
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionIDFromRequest returns the verified session id of the cookie.
func (h *Handler) sessionIDFromRequest(r *http.Request) (string, error) {
	c, err := r.Cookie(h.cookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSessionCookie
	}
	return h.verifyValue(c.Value)
}

// setFlash stores a notice shown once by the next rendered page.
func (h *Handler) setFlash(w http.ResponseWriter, kind, text string) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(kind + ":" + text))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    h.signValue(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie. A tampered cookie is dropped.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1})

	payload, err := h.verifyValue(c.Value)
	if err != nil {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(string(raw), ":")
	if !ok || text == "" {
		return nil
	}
	return &flash{Kind: kind, Text: text}
}

// redirectWithFlash answers a successful POST with 303 and a one-shot notice.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, to, kind, text string) {
	if text != "" {
		h.setFlash(w, kind, text)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func isHTTPS(baseURL string) bool {
	u, err := url.Parse(baseURL)
	return err == nil && u.Scheme == "https"
}
