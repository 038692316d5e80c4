// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/network"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

type offlineStatusFacade struct {
	network   Connectivity
	sync      SyncManager
	queue     *store.QueueStore
	autoSave  FormAutoSave
	validator validators.Validator
	logger    *logger.Logger

	listeners *utils.Listeners[models.SyncStatus]

	mu           sync.Mutex
	unsubscribes []func()
}

// NewOfflineStatusFacade wires the read model to its three sources. Call
// Close to detach it.
func NewOfflineStatusFacade(net Connectivity, syncManager SyncManager, queue *store.QueueStore, autoSave FormAutoSave, log *logger.Logger) OfflineStatusFacade {
	log = log.Component("offline-status")
	f := &offlineStatusFacade{
		network:   net,
		sync:      syncManager,
		queue:     queue,
		autoSave:  autoSave,
		validator: validators.NewOfflineValidator(),
		logger:    log,
		listeners: utils.NewListeners[models.SyncStatus](func(err error) {
			log.Error().Err(err).Str("func", "offlineStatusFacade.notify").Msg("status listener failed")
		}),
	}

	f.unsubscribes = []func(){
		net.Subscribe(func(network.Event) { f.recompute() }),
		syncManager.SubscribeSyncing(func(bool) { f.recompute() }),
		syncManager.Subscribe(func(models.SyncResult) { f.recompute() }),
		queue.Subscribe(func(c store.Collection) {
			if c != store.CollectionRecords {
				f.recompute()
			}
		}),
	}

	return f
}

func (f *offlineStatusFacade) Status() models.SyncStatus {
	return models.SyncStatus{
		IsOnline:          f.network.IsOnline(),
		IsReconnecting:    f.network.IsReconnecting(),
		IsSyncing:         f.sync.IsSyncing(),
		PendingActions:    f.queue.ActionCount(),
		LastSync:          f.queue.LastSync(),
		HasUnsavedChanges: f.queue.DraftCount() > 0,
	}
}

func (f *offlineStatusFacade) recompute() {
	f.listeners.Notify(f.Status())
}

func (f *offlineStatusFacade) Subscribe(fn func(models.SyncStatus)) func() {
	return f.listeners.Add(fn)
}

func (f *offlineStatusFacade) SubscribeResults(fn func(models.SyncResult)) func() {
	return f.sync.Subscribe(fn)
}

func (f *offlineStatusFacade) SyncNow(ctx context.Context) models.SyncResult {
	return f.sync.SyncNow(ctx)
}

// ClearOfflineData drops all offline state and waits for the change to be
// handed to the storage backend.
func (f *offlineStatusFacade) ClearOfflineData(ctx context.Context) error {
	f.autoSave.CancelAll()
	f.queue.ClearAll()

	if err := f.queue.Flush(ctx); err != nil {
		return fmt.Errorf("error flushing cleared offline data: %w", err)
	}
	f.logger.Info().Str("func", "offlineStatusFacade.ClearOfflineData").Msg("offline data cleared")
	return nil
}

func (f *offlineStatusFacade) SaveDraft(formID string, data json.RawMessage) error {
	if err := f.validator.Validate(context.Background(), models.FormDraft{FormID: formID, Data: data}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	f.autoSave.Save(formID, data)
	return nil
}

func (f *offlineStatusFacade) GetDraft(formID string) (models.FormDraft, bool) {
	return f.queue.GetDraft(formID)
}

func (f *offlineStatusFacade) RemoveDraft(formID string) {
	f.autoSave.ClearDraft(formID)
}

// Close detaches the facade from its sources.
func (f *offlineStatusFacade) Close() {
	f.mu.Lock()
	unsubscribes := f.unsubscribes
	f.unsubscribes = nil
	f.mu.Unlock()

	for _, u := range unsubscribes {
		u()
	}
}
