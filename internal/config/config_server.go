// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the server configuration assembled from [StructuredConfig].
type ServerConfig struct {
	// Version is exposed by the version endpoint.
	Version string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds every inbound request.
	RequestTimeout time.Duration
	// DSN is the PostgreSQL connection string.
	DSN string
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: orDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
		DSN:            cfg.Storage.DB.DSN,
	}
}
