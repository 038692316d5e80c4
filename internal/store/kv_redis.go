// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const redisKeyPrefix = "time-keeper:"

type redisKV struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewRedisKV connects to the Redis server in cfg and checks it with PING.
func NewRedisKV(ctx context.Context, cfg config.ClientRedis, log *logger.Logger) (KV, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisKV").Str("addr", cfg.Address).Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	log.Info().Str("func", "NewRedisKV").Str("addr", cfg.Address).Msg("connected to redis successfully")

	return &redisKV{rdb: rdb, logger: log}, nil
}

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *redisKV) Remove(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

func (r *redisKV) Close() error {
	return r.rdb.Close()
}
