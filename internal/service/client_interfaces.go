// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncManager owns the drain of the offline action queue.
type SyncManager interface {
	// QueueAction persists a mutation for later replay and, when online and
	// idle, schedules a drain shortly after. data is encoded as JSON unless
	// it already is a json.RawMessage.
	QueueAction(typ models.ActionType, endpoint string, data any, localID string) (string, error)

	// SyncNow drains the queue once. It never returns an error: failures are
	// reported in the result. Cancelling ctx does not stop a running pass;
	// only Stop does.
	SyncNow(ctx context.Context) models.SyncResult

	// IsSyncing reports whether a drain pass is running.
	IsSyncing() bool

	// Subscribe registers fn for the result of every non-empty drain pass.
	Subscribe(fn func(models.SyncResult)) (unsubscribe func())

	// SubscribeSyncing registers fn for drain start (true) and end (false).
	SubscribeSyncing(fn func(bool)) (unsubscribe func())

	// Start subscribes to connectivity changes. Drains started by triggers
	// run under ctx.
	Start(ctx context.Context)

	// Stop unsubscribes, cancels a pending trigger and waits for background
	// drains to finish.
	Stop()
}

// OfflineStatusFacade is the read model and action surface offered to the
// UI.
type OfflineStatusFacade interface {
	// Status returns the current offline status.
	Status() models.SyncStatus

	// Subscribe registers fn for every status recomputation.
	Subscribe(fn func(models.SyncStatus)) (unsubscribe func())

	// SubscribeResults registers fn for sync results.
	SubscribeResults(fn func(models.SyncResult)) (unsubscribe func())

	SyncNow(ctx context.Context) models.SyncResult

	// ClearOfflineData drops queued actions, offline records and drafts and
	// cancels pending autosaves.
	ClearOfflineData(ctx context.Context) error

	SaveDraft(formID string, data json.RawMessage) error
	GetDraft(formID string) (models.FormDraft, bool)
	RemoveDraft(formID string)

	// Close detaches the facade from its sources.
	Close()
}

// FormAutoSave debounces form snapshots into the draft collection.
type FormAutoSave interface {
	// Save schedules data to be written as the draft of formID once the form
	// has been idle for the debounce delay.
	Save(formID string, data json.RawMessage)

	// ClearDraft cancels a pending write and removes the stored draft.
	ClearDraft(formID string)

	// CancelAll cancels every pending write without touching stored drafts.
	CancelAll()

	// LastSaved returns when the draft of formID was last written.
	LastSaved(formID string) (time.Time, bool)

	// FlushAll writes every pending draft immediately.
	FlushAll()

	// Close cancels pending writes.
	Close()
}

// TimeRecordService applies time record mutations online and falls back to
// the offline queue.
type TimeRecordService interface {
	Create(ctx context.Context, record models.TimeRecord) (models.RecordOutcome, error)
	Update(ctx context.Context, id string, record models.TimeRecord) (models.RecordOutcome, error)
	Delete(ctx context.Context, id string) (models.RecordOutcome, error)

	// ListOffline returns the records created while offline and not yet
	// replayed.
	ListOffline() []models.OfflineRecord
}
