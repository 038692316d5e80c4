// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const kvTable = "kv_entries"

type sqlKV struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

// NewSQLKV returns a KV stored in the kv_entries table of db. The schema
// must already be migrated.
func NewSQLKV(db *DB, log *logger.Logger) KV {
	return &sqlKV{
		db:      db,
		builder: db.statementBuilder(),
		now:     time.Now,
		logger:  log,
	}
}

func (s *sqlKV) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		s.logFailure(err, "sqlKV.Get", key)
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(value), nil
}

func (s *sqlKV) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), s.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logFailure(err, "sqlKV.Set", key)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqlKV) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logFailure(err, "sqlKV.Remove", key)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqlKV) Close() error {
	return s.db.Close()
}

func (s *sqlKV) logFailure(err error, fn, key string) {
	s.logger.Err(err).
		Str("func", fn).
		Str("key", key).
		Stringer("classification", s.db.classify(err)).
		Msg("kv query failed")
}
