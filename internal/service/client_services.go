// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/network"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

// ClientServices groups the offline subsystem built on top of one queue
// store and one network monitor.
type ClientServices struct {
	Executor          *retry.Executor
	SyncManager       SyncManager
	AutoSave          FormAutoSave
	Status            OfflineStatusFacade
	TimeRecordService TimeRecordService
}

// NewClientServices wires the services. Nothing runs until
// SyncManager.Start is called.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteAPI,
	monitor *network.Monitor,
	clk clock.Clock,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	executor := retry.NewExecutor(monitor, clk, retry.Config{
		BaseDelay:      cfg.Sync.BaseDelay,
		MaxDelay:       cfg.Sync.MaxDelay,
		AttemptTimeout: cfg.Adapter.RequestTimeout,
	}, log)

	syncManager := NewSyncManager(storages.Queue, remote, executor, monitor, clk, cfg.Sync, log)
	autoSave := NewFormAutoSave(storages.Queue, clk, cfg.Sync.AutoSaveDelay, log)

	return &ClientServices{
		Executor:          executor,
		SyncManager:       syncManager,
		AutoSave:          autoSave,
		Status:            NewOfflineStatusFacade(monitor, syncManager, storages.Queue, autoSave, log),
		TimeRecordService: NewTimeRecordService(remote, executor, syncManager, storages.Queue, clk, utils.NewUUIDGenerator(), cfg.Sync.MaxRetries, log),
	}
}
