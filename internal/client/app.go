// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	monitor  adapter.ConnectivityMonitor
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, monitor adapter.ConnectivityMonitor, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncJob == nil {
		return nil, errors.New("client: services with a sync job are required")
	}
	if monitor == nil || ui == nil {
		return nil, errors.New("client: monitor and ui are required")
	}

	return &App{
		services: services,
		monitor:  monitor,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run starts connectivity probing and the background drain, then blocks in
// the UI. Quitting from the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.monitor.Run(ctx)
	}()
	// the monitor only returns once ctx is done
	defer func() {
		cancel()
		wg.Wait()
	}()

	a.services.SyncJob.Start(ctx)
	defer a.services.SyncJob.Stop()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
