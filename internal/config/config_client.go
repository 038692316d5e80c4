// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left unset by every source.
const (
	DefaultAdapterAddress  = "http://localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDSN             = "time-keeper.db"
	DefaultMaxRetries      = 3
	DefaultBatchSize       = 5
	DefaultBaseDelay       = time.Second
	DefaultMaxDelay        = 10 * time.Second
	DefaultTriggerDelay    = 100 * time.Millisecond
	DefaultReconnectGrace  = 2 * time.Second
	DefaultAutoSaveDelay   = 2 * time.Second
	DefaultProbeInterval   = 5 * time.Second
	DefaultControlAddress  = "127.0.0.1:7070"
	DefaultControlDeadline = 30 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version string
	LogFile string
}

// ClientAdapter holds settings used by the outbound transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote API.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// Token is the bearer token, may be empty.
	Token string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN string
}

// ClientRedis contains Redis connection settings.
type ClientRedis struct {
	Address  string
	Password string
	DB       int
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Redis ClientRedis
}

// ClientSync is the drain, retry and debounce policy.
type ClientSync struct {
	MaxRetries     int
	BatchSize      int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	TriggerDelay   time.Duration
	ReconnectGrace time.Duration
	AutoSaveDelay  time.Duration
}

// ClientServer holds the control API settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Server  ClientServer
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, filling unset fields with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig] and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
			Redis: ClientRedis{
				Address:  cfg.Storage.Redis.Address,
				Password: cfg.Storage.Redis.Password,
				DB:       cfg.Storage.Redis.DB,
			},
		},
		Sync: ClientSync{
			MaxRetries:     cfg.Sync.MaxRetries,
			BatchSize:      cfg.Sync.BatchSize,
			BaseDelay:      cfg.Sync.BaseDelay,
			MaxDelay:       cfg.Sync.MaxDelay,
			TriggerDelay:   cfg.Sync.TriggerDelay,
			ReconnectGrace: cfg.Sync.ReconnectGrace,
			AutoSaveDelay:  cfg.Sync.AutoSaveDelay,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	setDefault(&cfg.Adapter.HTTPAddress, DefaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	if cfg.Storage.Redis.Address == "" {
		setDefault(&cfg.Storage.DB.DSN, DefaultDSN)
	}
	setDefault(&cfg.Sync.MaxRetries, DefaultMaxRetries)
	setDefault(&cfg.Sync.BatchSize, DefaultBatchSize)
	setDefault(&cfg.Sync.BaseDelay, DefaultBaseDelay)
	setDefault(&cfg.Sync.MaxDelay, DefaultMaxDelay)
	setDefault(&cfg.Sync.TriggerDelay, DefaultTriggerDelay)
	setDefault(&cfg.Sync.ReconnectGrace, DefaultReconnectGrace)
	setDefault(&cfg.Sync.AutoSaveDelay, DefaultAutoSaveDelay)
	setDefault(&cfg.Server.HTTPAddress, DefaultControlAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultControlDeadline)
	setDefault(&cfg.Workers.ProbeInterval, DefaultProbeInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
