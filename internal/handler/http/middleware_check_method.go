// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches but its method does not. Browsers
// following a stale link or re-submitting a form get the not-found page
// instead, rendered by notFound.
//
// If the requested method is registered for the exact route pattern the
// request goes through the router again. Parameterised patterns such as
// /dashboard/trips/{id} never match the raw path, so those always end in
// notFound.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
