// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks settings shared by both binaries. Role-specific
// requirements are checked by the client and server views.
func (cfg *StructuredConfig) validate() error {
	for name, d := range map[string]int64{
		"server request timeout":  int64(cfg.Server.RequestTimeout),
		"adapter request timeout": int64(cfg.Adapter.RequestTimeout),
		"sync interval":           int64(cfg.Workers.SyncInterval),
		"ping interval":           int64(cfg.Workers.PingInterval),
		"sync debounce":           int64(cfg.Workers.SyncDebounce),
	} {
		if d < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidDuration, name)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 || cfg.Workers.PingInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
