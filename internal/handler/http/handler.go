// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	hub      *notify.Hub
	health   HealthChecker

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. health may be nil, in which case
// /healthz only reports that the process is up.
func NewHandler(services *service.Services, hub *notify.Hub, health HealthChecker, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		health:   health,
		logger:   logger,
	}
}
