// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		MaxRetries     int      `json:"max_retries"`
		BatchSize      int      `json:"batch_size"`
		BaseDelay      Duration `json:"base_delay"`
		MaxDelay       Duration `json:"max_delay"`
		TriggerDelay   Duration `json:"trigger_delay"`
		ReconnectGrace Duration `json:"reconnect_grace"`
		AutoSaveDelay  Duration `json:"auto_save_delay"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		ProbeInterval Duration `json:"probe_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Sync: Sync{
			MaxRetries:     jsonCfg.Sync.MaxRetries,
			BatchSize:      jsonCfg.Sync.BatchSize,
			BaseDelay:      time.Duration(jsonCfg.Sync.BaseDelay),
			MaxDelay:       time.Duration(jsonCfg.Sync.MaxDelay),
			TriggerDelay:   time.Duration(jsonCfg.Sync.TriggerDelay),
			ReconnectGrace: time.Duration(jsonCfg.Sync.ReconnectGrace),
			AutoSaveDelay:  time.Duration(jsonCfg.Sync.AutoSaveDelay),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			ProbeInterval: time.Duration(jsonCfg.Workers.ProbeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
