// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.Status.Status())
}

// syncNow runs one drain pass. Per-action failures are reported in the body
// with 200; 409 and 503 are used when the pass did not start at all.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	result := h.services.Status.SyncNow(r.Context())
	writeJSON(w, syncStatusCode(result), result)
}

func syncStatusCode(result models.SyncResult) int {
	if result.Success || len(result.Errors) != 1 || result.SyncedActions+result.FailedActions > 0 {
		return http.StatusOK
	}

	switch result.Errors[0] {
	case service.ErrSyncInProgress.Error():
		return http.StatusConflict
	case retry.ErrNoConnectivity.Error():
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func (h *Handler) clearOfflineData(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Status.ClearOfflineData(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clearOfflineData").Msg(app.MsgClearFailed)
		writeMessage(w, http.StatusInternalServerError, app.MsgClearFailed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
