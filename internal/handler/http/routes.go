// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Control API routes.
const (
	RouteVersion        = "/api/version"
	RouteStatus         = "/api/status"
	RouteSync           = "/api/sync"
	RouteOfflineData    = "/api/offline-data"
	RouteEvents         = "/api/events"
	RouteDraft          = "/api/drafts/{formID}"
	RouteTimeRecords    = "/api/time-records"
	RouteTimeRecord     = "/api/time-records/{id}"
	RouteOfflineRecords = "/api/time-records/offline"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get(RouteVersion, h.getVersion)

	// offline status and manual sync
	router.Group(func(r chi.Router) {
		r.Get(RouteStatus, h.getStatus)
		r.Post(RouteSync, h.syncNow)
		r.Delete(RouteOfflineData, h.clearOfflineData)
		r.Get(RouteEvents, h.events)
	})

	router.Group(func(r chi.Router) {
		r.Get(RouteDraft, h.getDraft)
		r.Put(RouteDraft, h.saveDraft)
		r.Delete(RouteDraft, h.removeDraft)
	})

	router.Group(func(r chi.Router) {
		r.Post(RouteTimeRecords, h.createTimeRecord)
		r.Get(RouteOfflineRecords, h.listOfflineRecords)
		r.Put(RouteTimeRecord, h.updateTimeRecord)
		r.Delete(RouteTimeRecord, h.deleteTimeRecord)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.routeNotFound))

	return router
}
