// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Collection names a persisted collection. The value is also its KV key.
type Collection string

const (
	CollectionActions Collection = "offline_actions"
	CollectionRecords Collection = "offline_records"
	CollectionDrafts  Collection = "form_drafts"
	CollectionMeta    Collection = "sync_meta"
)

// QueueStore keeps the offline action queue, the offline record mirror and
// the form drafts in memory and persists every change through a KV.
//
// Mutations and reads are synchronous and never fail because of the
// backend: persistence runs on a background writer and its errors are only
// logged. Reads return deep copies.
type QueueStore struct {
	mu       sync.RWMutex
	actions  *collection[models.OfflineAction]
	records  *collection[models.OfflineRecord]
	drafts   *collection[models.FormDraft]
	lastSync *time.Time

	kv        KV
	writer    *persistWriter
	clock     clock.Clock
	ids       utils.IDGenerator
	listeners *utils.Listeners[Collection]
	logger    *logger.Logger
	closeOnce sync.Once
}

// NewQueueStore returns an empty store backed by kv. Call Load to restore
// persisted state.
func NewQueueStore(kv KV, clk clock.Clock, ids utils.IDGenerator, log *logger.Logger) *QueueStore {
	log = log.Component("queue-store")
	return &QueueStore{
		actions: newCollection[models.OfflineAction](),
		records: newCollection[models.OfflineRecord](),
		drafts:  newCollection[models.FormDraft](),
		kv:      kv,
		writer:  newPersistWriter(kv, log),
		clock:   clk,
		ids:     ids,
		listeners: utils.NewListeners[Collection](func(err error) {
			log.Error().Err(err).Str("func", "QueueStore.notify").Msg("store listener failed")
		}),
		logger: log,
	}
}

// Load replaces the in-memory state with the persisted one. Missing keys
// yield empty collections. Corrupt documents are logged and yield empty
// collections. Backend failures are returned.
func (s *QueueStore) Load(ctx context.Context) error {
	var (
		actions []models.OfflineAction
		records []models.OfflineRecord
		drafts  []models.FormDraft
		meta    models.SyncMeta
	)

	if err := s.loadKey(ctx, CollectionActions, &actions); err != nil {
		return err
	}
	if err := s.loadKey(ctx, CollectionRecords, &records); err != nil {
		return err
	}
	if err := s.loadKey(ctx, CollectionDrafts, &drafts); err != nil {
		return err
	}
	if err := s.loadKey(ctx, CollectionMeta, &meta); err != nil {
		return err
	}

	s.mu.Lock()
	s.actions.reset(actions)
	s.records.reset(records)
	s.drafts.reset(drafts)
	s.lastSync = meta.LastSync
	counts := [3]int{s.actions.len(), s.records.len(), s.drafts.len()}
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "QueueStore.Load").
		Int("actions", counts[0]).
		Int("records", counts[1]).
		Int("drafts", counts[2]).
		Msg("offline state restored")

	for _, c := range []Collection{CollectionActions, CollectionRecords, CollectionDrafts, CollectionMeta} {
		s.listeners.Notify(c)
	}
	return nil
}

func (s *QueueStore) loadKey(ctx context.Context, key Collection, dst any) error {
	data, err := s.kv.Get(ctx, string(key))
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		s.logger.Err(err).Str("func", "QueueStore.Load").Str("key", string(key)).Msg("corrupt document, starting empty")
		return nil
	}
	return nil
}

// Subscribe registers fn to be called after every change of a collection.
func (s *QueueStore) Subscribe(fn func(Collection)) (unsubscribe func()) {
	return s.listeners.Add(fn)
}

// Flush waits until every change made before the call has been handed to
// the backend.
func (s *QueueStore) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// Close flushes pending writes, stops the writer and closes the backend.
func (s *QueueStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.writer.close()
		err = s.kv.Close()
	})
	return err
}

// PersistenceFailures returns the number of background writes that failed.
func (s *QueueStore) PersistenceFailures() uint64 {
	return s.writer.failureCount()
}

// ── actions ──────────────────────────────────────────────────────────────────

// AddAction appends a to the queue and returns its id. An empty ID or
// Timestamp is filled in.
func (s *QueueStore) AddAction(a models.OfflineAction) string {
	if a.ID == "" {
		a.ID = s.ids.Generate()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = s.clock.Now()
	}

	s.mu.Lock()
	s.actions.put(a)
	s.persistLocked(CollectionActions)
	s.mu.Unlock()

	s.listeners.Notify(CollectionActions)
	return a.ID
}

// UpdateAction replaces the action with the same ID. It reports false when
// the action is no longer queued.
func (s *QueueStore) UpdateAction(a models.OfflineAction) bool {
	return mutate(s, CollectionActions, func() bool { return s.actions.update(a) })
}

// RemoveAction deletes the action with the given id.
func (s *QueueStore) RemoveAction(id string) bool {
	return mutate(s, CollectionActions, func() bool { return s.actions.remove(id) })
}

// GetAction returns a copy of the action with the given id.
func (s *QueueStore) GetAction(id string) (models.OfflineAction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actions.get(id)
}

// GetAllActions returns copies of all queued actions in enqueue order.
func (s *QueueStore) GetAllActions() []models.OfflineAction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actions.all()
}

// ActionCount returns the number of queued actions.
func (s *QueueStore) ActionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actions.len()
}

// ClearActions empties the queue.
func (s *QueueStore) ClearActions() {
	mutate(s, CollectionActions, func() bool { s.actions.clear(); return true })
}

// ── offline records ──────────────────────────────────────────────────────────

// AddRecord stores r under its LocalID, replacing any previous entry.
func (s *QueueStore) AddRecord(r models.OfflineRecord) {
	mutate(s, CollectionRecords, func() bool { s.records.put(r); return true })
}

func (s *QueueStore) UpdateRecord(r models.OfflineRecord) bool {
	return mutate(s, CollectionRecords, func() bool { return s.records.update(r) })
}

func (s *QueueStore) RemoveRecord(localID string) bool {
	return mutate(s, CollectionRecords, func() bool { return s.records.remove(localID) })
}

func (s *QueueStore) GetRecord(localID string) (models.OfflineRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.get(localID)
}

func (s *QueueStore) GetAllRecords() []models.OfflineRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.all()
}

func (s *QueueStore) RecordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.len()
}

func (s *QueueStore) ClearRecords() {
	mutate(s, CollectionRecords, func() bool { s.records.clear(); return true })
}

// ── drafts ───────────────────────────────────────────────────────────────────

// SaveDraft upserts d by FormID. A zero SavedAt is set to now.
func (s *QueueStore) SaveDraft(d models.FormDraft) models.FormDraft {
	if d.SavedAt.IsZero() {
		d.SavedAt = s.clock.Now()
	}
	if len(d.Data) == 0 {
		d.Data = nil
	}
	mutate(s, CollectionDrafts, func() bool { s.drafts.put(d); return true })
	return d.Clone()
}

func (s *QueueStore) RemoveDraft(formID string) bool {
	return mutate(s, CollectionDrafts, func() bool { return s.drafts.remove(formID) })
}

func (s *QueueStore) GetDraft(formID string) (models.FormDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts.get(formID)
}

func (s *QueueStore) GetAllDrafts() []models.FormDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts.all()
}

func (s *QueueStore) DraftCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts.len()
}

func (s *QueueStore) ClearDrafts() {
	mutate(s, CollectionDrafts, func() bool { s.drafts.clear(); return true })
}

// ── sync meta ────────────────────────────────────────────────────────────────

// LastSync returns the completion time of the last drain pass, nil if none.
func (s *QueueStore) LastSync() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastSync == nil {
		return nil
	}
	t := *s.lastSync
	return &t
}

func (s *QueueStore) SetLastSync(t time.Time) {
	mutate(s, CollectionMeta, func() bool { s.lastSync = &t; return true })
}

// ClearAll empties the three collections. The last sync time is kept.
func (s *QueueStore) ClearAll() {
	s.mu.Lock()
	s.actions.clear()
	s.records.clear()
	s.drafts.clear()
	s.persistLocked(CollectionActions)
	s.persistLocked(CollectionRecords)
	s.persistLocked(CollectionDrafts)
	s.mu.Unlock()

	for _, c := range []Collection{CollectionActions, CollectionRecords, CollectionDrafts} {
		s.listeners.Notify(c)
	}
}

// mutate runs fn under the write lock and, if it changed anything, persists
// and notifies c.
func mutate(s *QueueStore, c Collection, fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	if changed {
		s.persistLocked(c)
	}
	s.mu.Unlock()

	if changed {
		s.listeners.Notify(c)
	}
	return changed
}

// persistLocked serializes collection c and hands it to the writer. Must be
// called with s.mu held so snapshots reach the writer in mutation order.
func (s *QueueStore) persistLocked(c Collection) {
	var (
		data []byte
		err  error
	)
	switch c {
	case CollectionActions:
		data, err = json.Marshal(s.actions.all())
	case CollectionRecords:
		data, err = json.Marshal(s.records.all())
	case CollectionDrafts:
		data, err = json.Marshal(s.drafts.all())
	case CollectionMeta:
		data, err = json.Marshal(models.SyncMeta{LastSync: s.lastSync})
	}
	if err != nil {
		s.logger.Err(err).Str("func", "QueueStore.persist").Str("key", string(c)).Msg("error encoding collection")
		return
	}

	s.writer.enqueue(string(c), data)
}
