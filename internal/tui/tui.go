// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	state     StateReader
	monitor   OnlineChecker
	watcher   *eventWatcher
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the terminal UI. listener may be nil, in which case bulk
// completion results are only picked up by the next refresh.
func New(
	services *service.ClientServices,
	state StateReader,
	monitor OnlineChecker,
	listener adapter.EventListener,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || state == nil || monitor == nil {
		return nil, errors.New("tui: services, state and monitor are required")
	}
	return &TUI{
		services:  services,
		state:     state,
		monitor:   monitor,
		watcher:   newEventWatcher(listener),
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the lists screen and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := &screenDeps{
		ctx:      ctx,
		services: t.services,
		state:    t.state,
		monitor:  t.monitor,
		watcher:  t.watcher,
	}
	pages := map[string]tea.Model{
		pageLists: newListsModel(d),
		pageItems: newItemsModel(d),
	}

	root := NewRootModel(pages, pageLists, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.watcher.setSender(p.Send)
	defer t.watcher.Stop()

	go forwardChanges(ctx, t.state.Changes(), p.Send)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func forwardChanges(ctx context.Context, changes <-chan struct{}, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			send(stateChangedMsg{})
		}
	}
}
