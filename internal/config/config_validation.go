// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] has no
// contradictory values. Missing values are fine at this stage; defaults are
// applied by [NewClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxRetries < 0 || cfg.Sync.BatchSize < 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.BaseDelay < 0 || cfg.Sync.MaxDelay < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Redis.Address == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.MaxRetries < 1 || cfg.Sync.BatchSize < 1 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MaxDelay < cfg.Sync.BaseDelay {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
