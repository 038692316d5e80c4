// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const maxDraftSize = 1 << 20

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.services.Status.GetDraft(chi.URLParam(r, "formID"))
	if !ok {
		writeMessage(w, http.StatusNotFound, app.MsgDraftNotFound)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

// saveDraft hands the body to the autosave debouncer and answers 202: the
// draft is written once the form has been idle for the autosave delay.
func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDraftSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, app.MsgDraftTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.saveDraft").Msg("error reading draft body")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	if err = h.services.Status.SaveDraft(chi.URLParam(r, "formID"), json.RawMessage(body)); err != nil {
		writeError(w, r, "*Handler.saveDraft", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) removeDraft(w http.ResponseWriter, r *http.Request) {
	h.services.Status.RemoveDraft(chi.URLParam(r, "formID"))
	w.WriteHeader(http.StatusNoContent)
}
