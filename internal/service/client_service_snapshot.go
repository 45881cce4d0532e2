// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type clientSnapshotService struct {
	session *state.Session
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientSnapshotService creates a service that merges server snapshots
// into session.
func NewClientSnapshotService(session *state.Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSnapshotService {
	return &clientSnapshotService{
		session: session,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// RefreshLists fetches every list and merges it into the local state. On
// failure the local state is left as it is.
func (s *clientSnapshotService) RefreshLists(ctx context.Context) error {
	lists, err := s.adapter.GetLists(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "clientSnapshotService.RefreshLists").Msg("lists snapshot unavailable")
		return fmt.Errorf("fetch lists: %w", err)
	}
	return s.session.ApplyListsSnapshot(ctx, lists)
}

// RefreshItems fetches the items of one list. A 404 means the list is gone
// on the server; it is dropped locally unless it still has queued work.
func (s *clientSnapshotService) RefreshItems(ctx context.Context, listID models.ID) error {
	if listID.IsTemporary() {
		return nil
	}

	items, err := s.adapter.GetItems(ctx, listID)
	if err != nil && classifyAdapterError(err) == failureNotFound {
		return s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
			if queue.HasListOperations(listID) {
				return
			}
			store.RemoveList(listID)
		})
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "clientSnapshotService.RefreshItems").
			Int64("list_id", int64(listID)).
			Msg("items snapshot unavailable")
		return fmt.Errorf("fetch items of list %d: %w", listID, err)
	}
	return s.session.ApplyItemsSnapshot(ctx, listID, items)
}

// HandleEvent refreshes the items of the list named by a bulk-complete
// event, successful or not. Other events are ignored.
func (s *clientSnapshotService) HandleEvent(ctx context.Context, event models.ListEvent) error {
	log := logger.FromContext(ctx)

	switch event.Event {
	case models.EventToggleCompleteDone:
	case models.EventToggleCompleteError:
		log.Warn().Str("func", "clientSnapshotService.HandleEvent").
			Int64("list_id", int64(event.ListID)).
			Str("error", event.Error).
			Msg("server failed to complete list")
	default:
		log.Debug().Str("func", "clientSnapshotService.HandleEvent").Str("event", event.Event).Msg("ignoring list event")
		return nil
	}

	return s.RefreshItems(ctx, event.ListID)
}
