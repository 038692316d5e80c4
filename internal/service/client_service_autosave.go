// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

type formAutoSave struct {
	queue  *store.QueueStore
	clock  clock.Clock
	delay  time.Duration
	logger *logger.Logger

	// writeMu orders draft writes against removals so a cleared draft is
	// never written back.
	writeMu sync.Mutex

	mu        sync.Mutex
	pending   map[string]*pendingDraft
	lastSaved map[string]time.Time
	cleared   map[string]uint64
	epoch     uint64
	closed    bool
}

// generation identifies the clears a snapshot was taken after.
type generation struct {
	epoch uint64
	form  uint64
}

type pendingDraft struct {
	data  json.RawMessage
	timer clock.Timer
}

// NewFormAutoSave returns a FormAutoSave writing to the draft collection
// of queue after delay of inactivity per form.
func NewFormAutoSave(queue *store.QueueStore, clk clock.Clock, delay time.Duration, log *logger.Logger) FormAutoSave {
	return &formAutoSave{
		queue:     queue,
		clock:     clk,
		delay:     delay,
		logger:    log.Component("form-autosave"),
		pending:   make(map[string]*pendingDraft),
		lastSaved: make(map[string]time.Time),
		cleared:   make(map[string]uint64),
	}
}

func (a *formAutoSave) Save(formID string, data json.RawMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	if prev, ok := a.pending[formID]; ok {
		prev.timer.Stop()
	}

	p := &pendingDraft{data: slices.Clone(data)}
	a.pending[formID] = p
	p.timer = a.clock.AfterFunc(a.delay, func() { a.fire(formID, p) })
}

// fire writes p if it is still the pending snapshot of formID.
func (a *formAutoSave) fire(formID string, p *pendingDraft) {
	data, gen, ok := a.take(formID, p)
	if !ok {
		return
	}
	a.write(formID, data, gen)
}

func (a *formAutoSave) take(formID string, p *pendingDraft) (json.RawMessage, generation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending[formID] != p {
		return nil, generation{}, false
	}
	delete(a.pending, formID)
	return p.data, a.generationLocked(formID), true
}

func (a *formAutoSave) generationLocked(formID string) generation {
	return generation{epoch: a.epoch, form: a.cleared[formID]}
}

// write saves data unless formID was cleared after the snapshot was taken.
func (a *formAutoSave) write(formID string, data json.RawMessage, gen generation) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	stale := a.generationLocked(formID) != gen
	a.mu.Unlock()
	if stale {
		a.logger.Debug().Str("func", "formAutoSave.write").Str("form_id", formID).Msg("draft cleared, write skipped")
		return
	}

	saved := a.queue.SaveDraft(models.FormDraft{FormID: formID, Data: data, SavedAt: a.clock.Now()})

	a.mu.Lock()
	a.lastSaved[formID] = saved.SavedAt
	a.mu.Unlock()

	a.logger.Debug().Str("func", "formAutoSave.write").Str("form_id", formID).Msg("draft saved")
}

func (a *formAutoSave) ClearDraft(formID string) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	if p, ok := a.pending[formID]; ok {
		p.timer.Stop()
		delete(a.pending, formID)
	}
	delete(a.lastSaved, formID)
	a.cleared[formID]++
	a.mu.Unlock()

	a.queue.RemoveDraft(formID)
}

func (a *formAutoSave) CancelAll() {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	for id, p := range a.pending {
		p.timer.Stop()
		delete(a.pending, id)
	}
	clear(a.lastSaved)
	a.epoch++
}

func (a *formAutoSave) LastSaved(formID string) (time.Time, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	t, ok := a.lastSaved[formID]
	return t, ok
}

func (a *formAutoSave) FlushAll() {
	a.mu.Lock()
	pending := a.pending
	a.pending = make(map[string]*pendingDraft)
	gens := make(map[string]generation, len(pending))
	for id, p := range pending {
		p.timer.Stop()
		gens[id] = a.generationLocked(id)
	}
	a.mu.Unlock()

	ids := make([]string, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		a.write(id, pending[id].data, gens[id])
	}
}

func (a *formAutoSave) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	a.CancelAll()
}
