// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// StateReader is the read side of the local session the screens render.
type StateReader interface {
	Lists() []models.TodoList
	List(id models.ID) (models.TodoList, bool)
	IsListPending(id models.ID) bool
	IsItemPending(listID, id models.ID) bool
	PendingCount() int
	Changes() <-chan struct{}
}

// OnlineChecker reports the last observed connectivity.
type OnlineChecker interface {
	Online() bool
}

// screenDeps is shared by every page.
type screenDeps struct {
	ctx      context.Context
	services *service.ClientServices
	state    StateReader
	monitor  OnlineChecker
	watcher  *eventWatcher
}

// eventWatcher keeps at most one push subscription, for the list currently
// on screen. Events are delivered to the program through send.
type eventWatcher struct {
	listener adapter.EventListener

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	send   func(tea.Msg)
}

func newEventWatcher(listener adapter.EventListener) *eventWatcher {
	return &eventWatcher{listener: listener}
}

func (w *eventWatcher) setSender(send func(tea.Msg)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.send = send
}

// Watch replaces the current subscription with one for listID.
func (w *eventWatcher) Watch(ctx context.Context, listID models.ID) {
	if w == nil {
		return
	}
	w.Stop()
	if w.listener == nil || listID.IsTemporary() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	send := w.send

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.listener.Watch(watchCtx, listID, func(event models.ListEvent) {
			if send != nil {
				send(listEventMsg{event: event})
			}
		})
	}()
}

// Stop ends the current subscription, if any, and waits for it to exit.
func (w *eventWatcher) Stop() {
	if w == nil {
		return
	}

	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
