// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a registered route but the method
// does not. The control API hides that distinction: if no route handles the
// requested method and path, notFound is called instead. Unlike a plain
// pattern comparison, the lookup goes through [chi.Mux.Match], so routes
// with URL parameters such as /api/drafts/{formID} are resolved as well.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
