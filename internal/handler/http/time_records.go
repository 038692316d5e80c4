// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

func (h *Handler) createTimeRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := decodeTimeRecord(w, r, "*Handler.createTimeRecord")
	if !ok {
		return
	}

	outcome, err := h.services.TimeRecordService.Create(r.Context(), record)
	if err != nil {
		writeError(w, r, "*Handler.createTimeRecord", err)
		return
	}

	writeOutcome(w, outcome, http.StatusCreated)
}

func (h *Handler) updateTimeRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := decodeTimeRecord(w, r, "*Handler.updateTimeRecord")
	if !ok {
		return
	}

	outcome, err := h.services.TimeRecordService.Update(r.Context(), chi.URLParam(r, "id"), record)
	if err != nil {
		writeError(w, r, "*Handler.updateTimeRecord", err)
		return
	}

	writeOutcome(w, outcome, http.StatusOK)
}

func (h *Handler) deleteTimeRecord(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.services.TimeRecordService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteTimeRecord", err)
		return
	}

	if !outcome.Queued {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusAccepted, outcome)
}

func (h *Handler) listOfflineRecords(w http.ResponseWriter, r *http.Request) {
	records := h.services.TimeRecordService.ListOffline()
	if records == nil {
		records = []models.OfflineRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func decodeTimeRecord(w http.ResponseWriter, r *http.Request, fn string) (models.TimeRecord, bool) {
	var record models.TimeRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return models.TimeRecord{}, false
	}
	return record, true
}

// writeOutcome answers 202 for mutations queued for replay and applied
// otherwise.
func writeOutcome(w http.ResponseWriter, outcome models.RecordOutcome, applied int) {
	if outcome.Queued {
		writeJSON(w, http.StatusAccepted, outcome)
		return
	}
	writeJSON(w, applied, outcome)
}
