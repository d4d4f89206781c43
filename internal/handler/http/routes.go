package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/static/*", http.StripPrefix("/static/", staticFiles()))

	// the event stream outlives the request timeout and must not be compressed
	router.With(h.withSession).Get("/events", h.events)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.timeout > 0 {
			r.Use(middleware.Timeout(h.timeout))
		}

		// routes without a session
		r.Group(func(r chi.Router) {
			r.Use(h.withOptionalSession)

			r.Get("/", h.home)
			r.Get("/about", h.staticPage("about", "About"))
			r.Get("/terms", h.staticPage("terms", "Terms of Service"))
			r.Get("/privacy", h.staticPage("privacy", "Privacy Policy"))
			r.Get("/cookies", h.staticPage("cookies", "Cookie Policy"))

			r.Get("/login", h.loginPage)
			r.Post("/login", h.login)
			r.Get("/register", h.registerPage)
			r.Post("/register", h.register)
			r.Get("/auth/callback", h.authCallback)

			r.Get("/u/{userID}", h.publicProfile)
		})

		// routes with a session
		r.Group(func(r chi.Router) {
			r.Use(h.withSession)

			r.Get("/dashboard", h.dashboard)

			r.Get("/dashboard/create-trip", h.createTripPage)
			r.Post("/dashboard/create-trip", h.createTrip)

			r.Get("/dashboard/trips", h.tripList)
			r.Get("/dashboard/trips/{id}", h.tripDetail)
			r.Get("/dashboard/trips/{id}/edit", h.editTripPage)
			r.Post("/dashboard/trips/{id}/edit", h.editTrip)
			r.Post("/dashboard/trips/{id}/delete", h.deleteTrip)

			r.Post("/dashboard/trips/{id}/entries", h.createEntry)
			r.Get("/dashboard/trips/{id}/entries/{entryID}/edit", h.editEntryPage)
			r.Post("/dashboard/trips/{id}/entries/{entryID}/edit", h.editEntry)
			r.Post("/dashboard/trips/{id}/entries/{entryID}/delete", h.deleteEntry)

			r.Get("/dashboard/edit-profile", h.editProfilePage)
			r.Post("/dashboard/edit-profile", h.editProfile)
			r.Get("/profile", h.ownProfile)

			r.Get("/logout", h.logout)
			r.Post("/logout", h.logout)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
