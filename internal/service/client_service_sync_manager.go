// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/network"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Connectivity is the subset of the network monitor used by services.
type Connectivity interface {
	IsOnline() bool
	IsReconnecting() bool
	Subscribe(fn func(network.Event)) (unsubscribe func())
}

type syncManager struct {
	queue    *store.QueueStore
	remote   adapter.RemoteAPI
	executor *retry.Executor
	network  Connectivity
	clock    clock.Clock
	cfg      config.ClientSync
	logger   *logger.Logger

	validator validators.Validator
	results   *utils.Listeners[models.SyncResult]
	syncing   *utils.Listeners[bool]

	mu          sync.Mutex
	isSyncing   bool
	trigger     clock.Timer
	runCtx      context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewSyncManager creates an idle SyncManager. Call Start to react to
// connectivity changes.
func NewSyncManager(
	queue *store.QueueStore,
	remote adapter.RemoteAPI,
	executor *retry.Executor,
	net Connectivity,
	clk clock.Clock,
	cfg config.ClientSync,
	log *logger.Logger,
) SyncManager {
	log = log.Component("sync-manager")
	onPanic := func(err error) {
		log.Error().Err(err).Str("func", "syncManager.notify").Msg("sync listener failed")
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = config.DefaultBatchSize
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = config.DefaultMaxRetries
	}

	return &syncManager{
		queue:     queue,
		remote:    remote,
		executor:  executor,
		network:   net,
		clock:     clk,
		cfg:       cfg,
		logger:    log,
		validator: validators.NewOfflineValidator(),
		results:   utils.NewListeners[models.SyncResult](onPanic),
		syncing:   utils.NewListeners[bool](onPanic),
		runCtx:    context.Background(),
	}
}

func (m *syncManager) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	m.runCtx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	unsubscribe := m.network.Subscribe(func(e network.Event) {
		if e == network.EventOnline {
			m.drainAsync("reconnect")
		}
	})

	m.mu.Lock()
	m.unsubscribe = unsubscribe
	m.mu.Unlock()
}

func (m *syncManager) Stop() {
	m.mu.Lock()
	unsubscribe, cancel := m.unsubscribe, m.cancel
	m.unsubscribe, m.cancel = nil, nil
	if m.trigger != nil {
		m.trigger.Stop()
		m.trigger = nil
	}
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	m.wg.Wait()

	m.mu.Lock()
	m.runCtx = context.Background()
	m.mu.Unlock()
}

func (m *syncManager) IsSyncing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isSyncing
}

func (m *syncManager) Subscribe(fn func(models.SyncResult)) func() {
	return m.results.Add(fn)
}

func (m *syncManager) SubscribeSyncing(fn func(bool)) func() {
	return m.syncing.Add(fn)
}

func (m *syncManager) QueueAction(typ models.ActionType, endpoint string, data any, localID string) (string, error) {
	payload, err := encodePayload(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}

	action := models.OfflineAction{
		Type:     typ,
		Endpoint: endpoint,
		Payload:  payload,
		LocalID:  localID,
	}
	if err = m.validator.Validate(context.Background(), action); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}

	id := m.queue.AddAction(action)
	m.logger.Debug().
		Str("func", "syncManager.QueueAction").
		Str("id", id).
		Str("type", string(typ)).
		Str("endpoint", endpoint).
		Msg("action queued")

	if m.network.IsOnline() {
		m.scheduleTrigger()
	}
	return id, nil
}

func encodePayload(data any) (json.RawMessage, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}
		return append(json.RawMessage(nil), v...), nil
	}

	return json.Marshal(data)
}

// scheduleTrigger arms a single delayed drain unless one is armed or a drain
// is running.
func (m *syncManager) scheduleTrigger() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isSyncing || m.trigger != nil {
		return
	}
	m.trigger = m.clock.AfterFunc(m.cfg.TriggerDelay, func() {
		m.mu.Lock()
		m.trigger = nil
		m.mu.Unlock()
		m.drainAsync("queue")
	})
}

func (m *syncManager) drainAsync(reason string) {
	m.mu.Lock()
	ctx := m.runCtx
	if ctx.Err() != nil {
		m.mu.Unlock()
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		result := m.SyncNow(ctx)
		m.logger.Debug().
			Str("func", "syncManager.drainAsync").
			Str("reason", reason).
			Bool("success", result.Success).
			Int("synced", result.SyncedActions).
			Int("failed", result.FailedActions).
			Msg("triggered drain finished")
	}()
}

func (m *syncManager) SyncNow(ctx context.Context) models.SyncResult {
	if !m.network.IsOnline() {
		return failedResult(retry.ErrNoConnectivity.Error())
	}

	m.mu.Lock()
	if m.isSyncing {
		m.mu.Unlock()
		return failedResult(ErrSyncInProgress.Error())
	}
	m.isSyncing = true
	runCtx := m.runCtx
	m.mu.Unlock()

	// The pass outlives the caller and stops only with the manager.
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	stop := context.AfterFunc(runCtx, cancel)
	defer stop()

	result, drained := m.runPass(ctx)
	if drained {
		m.syncing.Notify(false)
		m.results.Notify(result.Clone())
	}
	return result
}

// runPass drains the queue with the isSyncing flag held and releases it on
// every path.
func (m *syncManager) runPass(ctx context.Context) (result models.SyncResult, drained bool) {
	defer func() {
		m.mu.Lock()
		m.isSyncing = false
		m.mu.Unlock()
	}()

	snapshot := m.queue.GetAllActions()
	if len(snapshot) == 0 {
		return models.SyncResult{Success: true, Errors: []string{}}, false
	}

	m.syncing.Notify(true)
	return m.drain(ctx, snapshot), true
}

func (m *syncManager) drain(ctx context.Context, snapshot []models.OfflineAction) models.SyncResult {
	result := models.SyncResult{Errors: []string{}, StartedAt: m.clock.Now()}

	m.logger.Info().
		Str("func", "syncManager.drain").
		Int("actions", len(snapshot)).
		Int("batch_size", m.cfg.BatchSize).
		Msg("drain started")

	for start := 0; start < len(snapshot); start += m.cfg.BatchSize {
		batch := snapshot[start:min(start+m.cfg.BatchSize, len(snapshot))]
		outcomes := make([]error, len(batch))

		var g errgroup.Group
		for i, action := range batch {
			g.Go(func() error {
				outcomes[i] = m.executor.ExecuteWithRetry(ctx, func(ctx context.Context) error {
					return m.remote.Replay(ctx, action)
				}, m.cfg.MaxRetries)
				return nil
			})
		}
		_ = g.Wait()

		for i, action := range batch {
			m.settle(action, outcomes[i], &result)
		}
	}

	now := m.clock.Now()
	m.queue.SetLastSync(now)
	result.FinishedAt = now
	result.Success = result.FailedActions == 0

	m.logger.Info().
		Str("func", "syncManager.drain").
		Int("synced", result.SyncedActions).
		Int("failed", result.FailedActions).
		Int("pending", m.queue.ActionCount()).
		Msg("drain finished")

	return result
}

// settle applies the outcome of one replayed action to the queue.
func (m *syncManager) settle(action models.OfflineAction, err error, result *models.SyncResult) {
	if err == nil {
		m.queue.RemoveAction(action.ID)
		if action.LocalID != "" && action.Type == models.ActionCreate {
			m.queue.RemoveRecord(action.LocalID)
		}
		result.SyncedActions++
		return
	}

	result.FailedActions++
	result.Errors = append(result.Errors, fmt.Sprintf("Failed to sync %s %s: %v", action.Type, action.Endpoint, err))

	log := m.logger.Warn().
		Err(err).
		Str("func", "syncManager.settle").
		Str("id", action.ID).
		Str("type", string(action.Type)).
		Str("endpoint", action.Endpoint)

	switch {
	case errors.Is(err, retry.ErrNoConnectivity), errors.Is(err, context.Canceled):
		log.Msg("action kept for the next pass")

	case !retry.IsRetryable(err):
		m.queue.RemoveAction(action.ID)
		log.Msg("terminal failure, action dropped")

	default:
		action.RetryCount++
		if action.RetryCount >= m.cfg.MaxRetries {
			m.queue.RemoveAction(action.ID)
			log.Int("retry_count", action.RetryCount).Msg("retry budget exhausted, action dropped")
			return
		}
		m.queue.UpdateAction(action)
		log.Int("retry_count", action.RetryCount).Msg("retryable failure, action kept")
	}
}

func failedResult(msg string) models.SyncResult {
	return models.SyncResult{Success: false, Errors: []string{msg}}
}
