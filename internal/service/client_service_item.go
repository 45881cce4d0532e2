// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// clientItemService applies item actions optimistically and records them in
// the queue. An action on an item that is still temporary, or already has
// queued work, only folds into the queue and never calls the server.
type clientItemService struct {
	session *state.Session
	adapter adapter.ServerAdapter
	sync    ClientSyncService
	monitor adapter.ConnectivityMonitor
	logger  *logger.Logger
}

func NewClientItemService(
	session *state.Session,
	serverAdapter adapter.ServerAdapter,
	sync ClientSyncService,
	monitor adapter.ConnectivityMonitor,
	logger *logger.Logger,
) ClientItemService {
	return &clientItemService{
		session: session,
		adapter: serverAdapter,
		sync:    sync,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *clientItemService) Create(ctx context.Context, listID models.ID, description string) (models.ID, models.Outcome, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, models.QueuedForRetry, ErrEmptyItemDescription
	}

	id := s.session.NewTemporaryID()
	var (
		known   bool
		queueID string
	)
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		if known = store.HasList(listID); !known {
			return
		}
		store.AddItem(listID, id, description, true)
		queue.QueueItemCreate(listID, id, description, false)
		op, _ := queue.FindItem(models.AddItem, listID, id)
		queueID = op.QueueID
	})
	if !known {
		return 0, models.QueuedForRetry, ErrUnknownList
	}
	if err != nil {
		return id, models.QueuedForRetry, err
	}

	if listID.IsTemporary() || !s.monitor.Online() {
		return id, models.QueuedForRetry, nil
	}

	res := s.sync.ProcessOperation(ctx, queueID)
	if res.Outcome == models.Applied && res.ID != 0 {
		id = res.ID
	}
	return id, res.Outcome, nil
}

func (s *clientItemService) Edit(ctx context.Context, listID, id models.ID, description string) (models.Outcome, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.QueuedForRetry, ErrEmptyItemDescription
	}

	return s.edit(ctx, listID, id, func(item models.TodoItem) models.TodoItem {
		item.Description = description
		return item
	})
}

func (s *clientItemService) Toggle(ctx context.Context, listID, id models.ID) (models.Outcome, error) {
	return s.edit(ctx, listID, id, func(item models.TodoItem) models.TodoItem {
		item.Completed = !item.Completed
		return item
	})
}

// edit applies change to the item and records the new field values.
func (s *clientItemService) edit(ctx context.Context, listID, id models.ID, change func(models.TodoItem) models.TodoItem) (models.Outcome, error) {
	var (
		known, direct bool
		queueID       string
	)
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		item, ok := store.Item(listID, id)
		if known = ok; !known {
			return
		}
		direct = !isUnconfirmed(item) && !queue.HasItemOperations(listID, id)

		item = change(item)
		store.UpdateItem(listID, id, item.Description, item.Completed)
		queue.QueueItemEdit(listID, id, item.Description, item.Completed)
		if op, ok := queue.FindItem(models.UpdateItem, listID, id); ok {
			queueID = op.QueueID
		}
	})
	if !known {
		return models.QueuedForRetry, ErrUnknownItem
	}
	if err != nil {
		return models.QueuedForRetry, err
	}

	return s.replay(ctx, direct, queueID), nil
}

func (s *clientItemService) Delete(ctx context.Context, listID, id models.ID) (models.Outcome, error) {
	var (
		known, direct bool
		queueID       string
	)
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		item, ok := store.Item(listID, id)
		if known = ok; !known {
			return
		}
		direct = !isUnconfirmed(item) && !queue.HasItemOperations(listID, id)

		store.RemoveItem(listID, id)
		queue.QueueItemDelete(listID, id)
		if op, ok := queue.FindItem(models.DeleteItem, listID, id); ok {
			queueID = op.QueueID
		}
	})
	if !known {
		return models.QueuedForRetry, ErrUnknownItem
	}
	if err != nil {
		return models.QueuedForRetry, err
	}

	// an item that never reached the server is simply gone
	if queueID == "" {
		return models.Applied, nil
	}
	return s.replay(ctx, direct, queueID), nil
}

// CompleteAll implements [ClientItemService]. When the bulk request cannot be
// sent, every item is completed locally and its change queued as a regular
// edit, folding into whatever is already queued for it.
func (s *clientItemService) CompleteAll(ctx context.Context, listID models.ID, completed bool) (models.Outcome, error) {
	if _, ok := s.session.List(listID); !ok {
		return models.QueuedForRetry, ErrUnknownList
	}

	if !listID.IsTemporary() && s.monitor.Online() {
		err := s.adapter.ToggleCompleteAsync(ctx, listID, completed)
		switch {
		case err == nil:
			return models.Applied, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
				store.SetAllCompleted(listID, completed)
				// queued payloads would otherwise send the old flag back
				list, _ := store.List(listID)
				for _, item := range list.Todos {
					if !queue.UpdateQueuedAddItem(listID, item.ID, item.Description, completed) {
						queue.UpdateQueuedUpdateItem(listID, item.ID, item.Description, completed)
					}
				}
			})
		case classifyAdapterError(err) == failureNotFound:
			return models.TerminalResolved, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
				store.RemoveList(listID)
				queue.ClearForList(listID)
			})
		default:
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "clientItemService.CompleteAll").
				Int64("list_id", int64(listID)).
				Msg("bulk complete failed, queueing per item")
		}
	}

	return models.QueuedForRetry, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		list, ok := store.List(listID)
		if !ok {
			return
		}
		for _, item := range list.Todos {
			if item.Completed == completed {
				continue
			}
			store.UpdateItem(listID, item.ID, item.Description, completed)
			queue.QueueItemEdit(listID, item.ID, item.Description, completed)
		}
	})
}

func (s *clientItemService) replay(ctx context.Context, direct bool, queueID string) models.Outcome {
	if !direct || queueID == "" || !s.monitor.Online() {
		return models.QueuedForRetry
	}
	return s.sync.ProcessOperation(ctx, queueID).Outcome
}

// isUnconfirmed reports whether the server does not know the item yet.
// Pending is authoritative; the id range covers state saved before the flag
// existed.
func isUnconfirmed(item models.TodoItem) bool {
	return item.Pending || item.ID.IsTemporary() || item.ListID.IsTemporary()
}
