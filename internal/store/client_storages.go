// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = ":memory:"

// ClientStorages groups the client-side storage layer.
type ClientStorages struct {
	// Queue is the offline action queue, record mirror and draft store.
	Queue *QueueStore
}

// NewClientStorages selects a KV backend from cfg and builds the queue store
// on top of it:
//  1. Redis when cfg.Redis.Address is set.
//  2. In-memory when the DSN is ":memory:".
//  3. PostgreSQL when the DSN is a postgres:// URL.
//  4. SQLite otherwise, with the DSN as the database file path.
//
// SQL backends are migrated before use. Persisted state is not loaded; call
// QueueStore.Load.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, clk clock.Clock, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	kv, err := newKV(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Queue: NewQueueStore(kv, clk, utils.NewUUIDGenerator(), log),
	}, nil
}

func newKV(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KV, error) {
	switch {
	case cfg.Redis.Address != "":
		return NewRedisKV(ctx, cfg.Redis, log)
	case cfg.DB.DSN == MemoryDSN:
		return NewMemoryKV(), nil
	}

	var (
		db  *DB
		err error
	)
	if IsPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLKV(db, log), nil
}
