// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Event names of the /api/events stream.
const (
	EventStatus = "status"
	EventResult = "result"
)

// eventBuffer bounds the events queued for a slow stream consumer. Events
// beyond it are dropped; the next status event carries the current state.
const eventBuffer = 32

type streamEvent struct {
	name string
	data any
}

// events streams status changes and sync results as server-sent events. The
// current status is sent first.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	rc := http.NewResponseController(w)

	queue := make(chan streamEvent, eventBuffer)
	push := func(name string, data any) {
		select {
		case queue <- streamEvent{name: name, data: data}:
		default:
			log.Warn().Str("func", "*Handler.events").Str("event", name).Msg("event stream lagging, event dropped")
		}
	}

	unsubscribeStatus := h.services.Status.Subscribe(func(s models.SyncStatus) { push(EventStatus, s) })
	defer unsubscribeStatus()
	unsubscribeResults := h.services.Status.SubscribeResults(func(res models.SyncResult) { push(EventResult, res) })
	defer unsubscribeResults()

	// the stream outlives the server write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, EventStatus, h.services.Status.Status()); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		log.Err(err).Str("func", "*Handler.events").Msg(app.MsgStreamingUnsupported)
		return
	}

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		var err error
		select {
		case <-r.Context().Done():
			return
		case e := <-queue:
			err = writeEvent(w, e.name, e.data)
		case <-keepAlive.C:
			_, err = io.WriteString(w, ": keep-alive\n\n")
		}

		if err == nil {
			err = rc.Flush()
		}
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.events").Msg("event stream closed")
			return
		}
	}
}

func writeEvent(w io.Writer, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	return err
}
