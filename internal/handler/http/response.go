// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	_, _ = utils.WriteJSON(w, v, status)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, utils.ErrorResponse{Error: msg})
}

// writeError logs err and answers with the status mapped from it. Client
// errors carry the error text, server errors a generic message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		writeMessage(w, status, app.MsgInternalServerError)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	writeMessage(w, status, err.Error())
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, app.MsgRouteNotFound)
}
