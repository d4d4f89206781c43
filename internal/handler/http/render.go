package http

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pages holds one template set per page, each a clone of the shared layout.
type pages struct {
	byName map[string]*template.Template
}

// pageData is the value every page template executes on.
type pageData struct {
	Title    string
	SignedIn bool
	Nav      models.PublicProfile
	Flash    *flash
	Alert    string
	Data     any
}

var templateFuncs = template.FuncMap{
	"tagColor": func(tag string) int {
		return utils.TagColorIndex(tag, utils.TagPaletteSize)
	},
	"deref": deref,
	"truncate": func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "…"
	},
	"moods":    func() []models.Mood { return models.Moods },
	"statuses": func() []models.TripStatus { return models.TripStatuses },
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

func mustParsePages() *pages {
	p, err := parsePages(templateFS)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePages(fsys fs.FS) (*pages, error) {
	base, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(fsys, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	out := &pages{byName: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if t, err = t.ParseFS(fsys, file); err != nil {
			return nil, err
		}
		out.byName[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return out, nil
}

func staticFiles() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// newPage collects what the layout needs: the one-shot flash and, for a
// signed-in caller, the navbar profile from the session's profile state.
func (h *Handler) newPage(w http.ResponseWriter, r *http.Request, title string) *pageData {
	pd := &pageData{
		Title: title,
		Flash: h.popFlash(w, r),
	}

	if session, ok := sessionFrom(r.Context()); ok {
		pd.SignedIn = true
		pd.Nav = h.navProfile(r, session)
	}
	return pd
}

// navProfile reads the shared profile value, loading it once per session
// state when it is absent.
func (h *Handler) navProfile(r *http.Request, session models.Session) models.PublicProfile {
	ctx := r.Context()
	user := session.User

	st, ok := synchronizer.ProfileStateFrom(ctx)
	if !ok {
		return models.NewPublicProfile(nil, &user)
	}

	p := st.Get()
	if p == nil {
		loaded, err := h.services.ProfileService.GetProfile(ctx, session.UserID())
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("navbar profile not loaded")
		}
		if loaded != nil {
			st.Update(loaded)
			p = loaded
		}
	}
	return models.NewPublicProfile(p, &user)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, pd *pageData) {
	log := logger.FromRequest(r)

	t, ok := h.pages.byName[name]
	if !ok {
		log.Error().Str("page", name).Msg("unknown page template")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", pd); err != nil {
		log.Err(err).Str("page", name).Msg("page rendering failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", h.newPage(w, r, "Not found"))
}
