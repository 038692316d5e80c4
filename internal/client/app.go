// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/handler"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/network"
	"github.com/MKhiriev/go-time-keeper/internal/server"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/workers"
	"github.com/MKhiriev/go-time-keeper/models"
)

// closeTimeout bounds the final flush of persisted state on exit.
const closeTimeout = 5 * time.Second

type App struct {
	storages *store.ClientStorages
	monitor  *network.Monitor
	services *service.ClientServices
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

// NewApp builds every component from cfg. The monitor starts offline; the
// first successful probe flips it online, which drains whatever a previous
// run left in the queue.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	clk := clock.New()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, clk, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteAPI(cfg.Adapter, log)
	if err != nil {
		_ = storages.Queue.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	return newApp(storages, remote, clk, cfg, buildInfo, log)
}

func newApp(
	storages *store.ClientStorages,
	remote adapter.RemoteAPI,
	clk clock.Clock,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	monitor := network.NewMonitor(false, cfg.Sync.ReconnectGrace, clk, log)
	services := service.NewClientServices(storages, remote, monitor, clk, cfg, log)
	prober := network.NewProber(remote, monitor, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, log)

	handlers, err := handler.NewHandlers(services, buildInfo, cfg.Server, log)
	if err != nil {
		_ = storages.Queue.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = storages.Queue.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		monitor:  monitor,
		services: services,
		// the sync manager subscribes before the prober reports the first
		// transition
		workers: workers.NewWorkers(log, services.SyncManager, prober),
		server:  srv,
		logger:  log,
	}, nil
}

// Run loads persisted state, starts the background workers and serves the
// control API until ctx is cancelled. Pending drafts are flushed and the
// store is closed before it returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.storages.Queue.Load(ctx); err != nil {
		_ = a.storages.Queue.Close()
		return fmt.Errorf("load offline state: %w", err)
	}
	a.logger.Info().
		Str("func", "App.Run").
		Int("pending_actions", a.storages.Queue.ActionCount()).
		Int("offline_records", a.storages.Queue.RecordCount()).
		Int("drafts", a.storages.Queue.DraftCount()).
		Msg("offline state loaded")

	a.workers.Start(ctx)
	runErr := a.server.RunServer(ctx)

	return errors.Join(runErr, a.close())
}

func (a *App) close() error {
	a.workers.Stop()
	a.services.AutoSave.FlushAll()
	a.services.AutoSave.Close()
	a.services.Status.Close()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var errs []error
	if err := a.storages.Queue.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush offline state: %w", err))
	}
	if err := a.storages.Queue.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	if n := a.storages.Queue.PersistenceFailures(); n > 0 {
		a.logger.Warn().Str("func", "App.close").Uint64("failures", n).Msg("some offline state was not persisted")
	}

	a.logger.Info().Str("func", "App.close").Msg("client stopped")
	return errors.Join(errs...)
}
