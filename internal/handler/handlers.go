// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers groups the transports the server exposes. Only HTTP exists today.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP transport. The server has nothing to serve
// without an address, so an empty one is an error. health may be nil.
func NewHandlers(services *service.Services, hub *notify.Hub, health http.HealthChecker, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("addr", cfg.HTTPAddress).Msg("creating HTTP handlers")
	return &Handlers{HTTP: http.NewHandler(services, hub, health, logger)}, nil
}
