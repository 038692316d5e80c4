// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

type timeRecordService struct {
	remote     adapter.RemoteAPI
	executor   *retry.Executor
	sync       SyncManager
	queue      *store.QueueStore
	clock      clock.Clock
	ids        utils.IDGenerator
	validator  validators.Validator
	maxRetries int
	logger     *logger.Logger
}

// NewTimeRecordService returns a TimeRecordService that calls remote
// through executor and queues the mutation through syncManager when the
// backend cannot be reached.
func NewTimeRecordService(
	remote adapter.RemoteAPI,
	executor *retry.Executor,
	syncManager SyncManager,
	queue *store.QueueStore,
	clk clock.Clock,
	ids utils.IDGenerator,
	maxRetries int,
	log *logger.Logger,
) TimeRecordService {
	return &timeRecordService{
		remote:     remote,
		executor:   executor,
		sync:       syncManager,
		queue:      queue,
		clock:      clk,
		ids:        ids,
		validator:  validators.NewOfflineValidator(),
		maxRetries: maxRetries,
		logger:     log.Component("time-records"),
	}
}

func (s *timeRecordService) Create(ctx context.Context, record models.TimeRecord) (models.RecordOutcome, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.RecordOutcome{}, fmt.Errorf("%w: %w", ErrInvalidTimeRecord, err)
	}
	record.ID = ""

	created, err := retry.Do(ctx, s.executor, func(ctx context.Context) (models.TimeRecord, error) {
		return s.remote.CreateTimeRecord(ctx, record)
	}, s.maxRetries)
	if err == nil {
		return models.RecordOutcome{Record: &created}, nil
	}
	if !shouldQueue(err) {
		return models.RecordOutcome{}, mapAdapterError(err)
	}

	localID := s.ids.Generate()
	s.queue.AddRecord(models.OfflineRecord{
		LocalID:   localID,
		Record:    record,
		IsOffline: true,
		CreatedAt: s.clock.Now(),
	})

	actionID, qErr := s.sync.QueueAction(models.ActionCreate, adapter.TimeRecordsPath, record, localID)
	if qErr != nil {
		s.queue.RemoveRecord(localID)
		return models.RecordOutcome{}, qErr
	}

	s.logQueued("timeRecordService.Create", actionID, err)
	return models.RecordOutcome{Queued: true, ActionID: actionID, LocalID: localID}, nil
}

func (s *timeRecordService) Update(ctx context.Context, id string, record models.TimeRecord) (models.RecordOutcome, error) {
	record.ID = id
	if err := s.validator.Validate(ctx, record, validators.FieldRecordID, validators.FieldProjectName,
		validators.FieldStartTime, validators.FieldTimeRange, validators.FieldTags); err != nil {
		return models.RecordOutcome{}, fmt.Errorf("%w: %w", ErrInvalidTimeRecord, err)
	}
	if mirror, ok := s.queue.GetRecord(id); ok {
		return s.updateOffline(mirror, record)
	}

	updated, err := retry.Do(ctx, s.executor, func(ctx context.Context) (models.TimeRecord, error) {
		return s.remote.UpdateTimeRecord(ctx, id, record)
	}, s.maxRetries)
	if err == nil {
		return models.RecordOutcome{Record: &updated}, nil
	}
	if !shouldQueue(err) {
		return models.RecordOutcome{}, mapAdapterError(err)
	}

	actionID, qErr := s.sync.QueueAction(models.ActionUpdate, adapter.TimeRecordPath(id), record, "")
	if qErr != nil {
		return models.RecordOutcome{}, qErr
	}

	s.logQueued("timeRecordService.Update", actionID, err)
	return models.RecordOutcome{Queued: true, ActionID: actionID}, nil
}

func (s *timeRecordService) Delete(ctx context.Context, id string) (models.RecordOutcome, error) {
	if err := s.validator.Validate(ctx, models.TimeRecord{ID: id}, validators.FieldRecordID); err != nil {
		return models.RecordOutcome{}, fmt.Errorf("%w: %w", ErrInvalidTimeRecord, err)
	}
	if _, ok := s.queue.GetRecord(id); ok {
		return s.deleteOffline(id)
	}

	err := s.executor.ExecuteWithRetry(ctx, func(ctx context.Context) error {
		return s.remote.DeleteTimeRecord(ctx, id)
	}, s.maxRetries)
	if err == nil {
		return models.RecordOutcome{}, nil
	}
	if !shouldQueue(err) {
		return models.RecordOutcome{}, mapAdapterError(err)
	}

	actionID, qErr := s.sync.QueueAction(models.ActionDelete, adapter.TimeRecordPath(id), nil, "")
	if qErr != nil {
		return models.RecordOutcome{}, qErr
	}

	s.logQueued("timeRecordService.Delete", actionID, err)
	return models.RecordOutcome{Queued: true, ActionID: actionID}, nil
}

// updateOffline rewrites the queued create of a record that only exists
// locally, so the server receives the latest version in a single request.
func (s *timeRecordService) updateOffline(mirror models.OfflineRecord, record models.TimeRecord) (models.RecordOutcome, error) {
	if s.sync.IsSyncing() {
		return models.RecordOutcome{}, ErrSyncInProgress
	}
	create, ok := s.pendingCreate(mirror.LocalID)
	if !ok {
		return models.RecordOutcome{}, fmt.Errorf("%w: %s", ErrTimeRecordNotFound, mirror.LocalID)
	}

	record.ID = ""
	payload, err := json.Marshal(record)
	if err != nil {
		return models.RecordOutcome{}, fmt.Errorf("%w: %w", ErrInvalidTimeRecord, err)
	}
	create.Payload = payload
	if !s.queue.UpdateAction(create) {
		return models.RecordOutcome{}, fmt.Errorf("%w: %s", ErrTimeRecordNotFound, mirror.LocalID)
	}

	mirror.Record = record
	s.queue.UpdateRecord(mirror)

	s.logger.Info().
		Str("func", "timeRecordService.updateOffline").
		Str("local_id", mirror.LocalID).
		Str("action_id", create.ID).
		Msg("queued create rewritten")
	return models.RecordOutcome{Queued: true, ActionID: create.ID, LocalID: mirror.LocalID}, nil
}

// deleteOffline drops a record that never reached the server together with
// its queued create.
func (s *timeRecordService) deleteOffline(localID string) (models.RecordOutcome, error) {
	if s.sync.IsSyncing() {
		return models.RecordOutcome{}, ErrSyncInProgress
	}
	if create, ok := s.pendingCreate(localID); ok {
		s.queue.RemoveAction(create.ID)
	}
	s.queue.RemoveRecord(localID)

	s.logger.Info().Str("func", "timeRecordService.deleteOffline").Str("local_id", localID).Msg("offline record discarded")
	return models.RecordOutcome{LocalID: localID}, nil
}

func (s *timeRecordService) pendingCreate(localID string) (models.OfflineAction, bool) {
	for _, a := range s.queue.GetAllActions() {
		if a.Type == models.ActionCreate && a.LocalID == localID {
			return a, true
		}
	}
	return models.OfflineAction{}, false
}

func (s *timeRecordService) ListOffline() []models.OfflineRecord {
	return s.queue.GetAllRecords()
}

func (s *timeRecordService) logQueued(fn, actionID string, cause error) {
	s.logger.Info().Err(cause).Str("func", fn).Str("action_id", actionID).Msg("backend unreachable, mutation queued")
}

// shouldQueue reports whether a failed online call should fall back to the
// offline queue: the backend was unreachable or kept failing transiently.
func shouldQueue(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, retry.ErrNoConnectivity) || retry.IsRetryable(err)
}
