// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Persister stores the full client state.
type Persister interface {
	SaveState(ctx context.Context, st models.State) error
}

// Session owns the entity store and the pending operation queue of one
// client. Each exported mutation runs as a single step under the session
// lock and is followed by a write of the whole state through the
// [Persister], when one is configured. The lock is never held across a
// network call.
type Session struct {
	mu    sync.RWMutex
	store *EntityStore
	queue *Queue
	ids   *TempIDGenerator

	saveMu    sync.Mutex
	persister Persister

	changes chan struct{}
	logger  *logger.Logger
}

// NewSession restores a session from st. persister may be nil.
func NewSession(st models.State, persister Persister, logger *logger.Logger) *Session {
	s := &Session{
		store:     NewEntityStore(st.Lists),
		queue:     NewQueue(st.Queue, utils.NewUUIDGenerator()),
		ids:       NewTempIDGenerator(),
		persister: persister,
		changes:   make(chan struct{}, 1),
		logger:    logger,
	}
	s.ids.Observe(s.store.MaxTemporaryID())
	s.ids.Observe(s.queue.MaxTemporaryID())
	return s
}

// Update runs fn as one locked step on a fresh copy of the store and
// persists the result. Store values handed out earlier are never modified.
// The in-memory change stays applied even if persisting fails.
func (s *Session) Update(ctx context.Context, fn func(store *EntityStore, queue *Queue)) error {
	s.mu.Lock()
	s.store = s.store.With(func(next *EntityStore) { fn(next, s.queue) })
	s.mu.Unlock()

	s.notify()
	return s.persist(ctx)
}

// View runs fn under the read lock. fn must not retain or mutate its
// arguments.
func (s *Session) View(fn func(store *EntityStore, queue *Queue)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.store, s.queue)
}

// Changes delivers a signal after every mutation. Signals are coalesced:
// a slow reader sees at most one pending signal.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// NewTemporaryID mints an id for an entity created locally.
func (s *Session) NewTemporaryID() models.ID {
	return s.ids.Next()
}

// State returns a deep copy of the current state.
func (s *Session) State() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.State{Lists: s.store.Lists(), Queue: s.queue.Operations()}
}

// Lists returns a copy of every list.
func (s *Session) Lists() []models.TodoList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Lists()
}

// List returns a copy of one list.
func (s *Session) List(id models.ID) (models.TodoList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.List(id)
}

// Operations returns a copy of the queue.
func (s *Session) Operations() []models.PendingOperation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Operations()
}

// ListOperations returns a copy of the queued list operations.
func (s *Session) ListOperations() []models.PendingOperation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.ListOperations()
}

// ItemOperations returns a copy of the queued item operations.
func (s *Session) ItemOperations() []models.PendingOperation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.ItemOperations()
}

// Operation returns the current version of a queue entry.
func (s *Session) Operation(queueID string) (models.PendingOperation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Get(queueID)
}

// PendingCount returns the number of queued operations.
func (s *Session) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

// IsListPending reports whether the list or any of its items has queued
// work.
func (s *Session) IsListPending(id models.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.HasListOperations(id)
}

// IsItemPending reports whether the item has queued work.
func (s *Session) IsItemPending(listID, id models.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.HasItemOperations(listID, id)
}

// ApplyListsSnapshot merges a server snapshot of all lists. Lists and items
// the user deleted locally but whose deletion is still queued are hidden
// from the snapshot so they do not reappear.
func (s *Session) ApplyListsSnapshot(ctx context.Context, server []models.TodoList) error {
	return s.Update(ctx, func(store *EntityStore, queue *Queue) {
		visible := make([]models.TodoList, 0, len(server))
		for _, l := range server {
			if _, deleted := queue.FindList(models.DeleteList, l.ID); deleted {
				continue
			}
			if l.Todos != nil {
				l.Todos = withoutDeletedItems(queue, l.ID, l.Todos)
			}
			visible = append(visible, l)
		}
		store.ApplyListsSnapshot(visible)
	})
}

// ApplyItemsSnapshot merges the server items of one list.
func (s *Session) ApplyItemsSnapshot(ctx context.Context, listID models.ID, fetched []models.TodoItem) error {
	return s.Update(ctx, func(store *EntityStore, queue *Queue) {
		store.SetItemsFetched(listID, withoutDeletedItems(queue, listID, fetched))
	})
}

// ConciliateList completes a confirmed list creation in one step: the
// temporary id is replaced by the server id in the store and in every queued
// item operation, and the ADD_LIST entry is resolved.
//
// If the entry is unchanged it is dequeued. If the list was renamed while the
// creation was in flight, the entry becomes an UPDATE_LIST of the server id
// carrying the newest name. If the entry is gone, the list was deleted in the
// meantime and a DELETE_LIST of the server id is enqueued.
func (s *Session) ConciliateList(ctx context.Context, queueID string, sent models.ListPayload, created models.TodoList) error {
	tempID, serverID := sent.ID, created.ID

	return s.Update(ctx, func(store *EntityStore, queue *Queue) {
		entry, ok := queue.Get(queueID)

		store.ReassignListID(tempID, serverID)
		queue.ReassignListID(tempID, serverID)

		if !ok {
			queue.Enqueue(models.DeleteList, models.ListPayload{ID: serverID})
			return
		}

		current, _ := entry.ListPayload()
		if current == sent {
			queue.Dequeue(queueID)
			clean := false
			store.UpdateList(serverID, &created.Name, &clean)
			return
		}

		current.ID = serverID
		queue.Replace(models.PendingOperation{QueueID: queueID, Kind: models.UpdateList, Payload: current})
		store.SetListDirty(serverID, true)
	})
}

// ConciliateItem completes a confirmed item creation in one step, the same
// way [Session.ConciliateList] does for lists. An item deleted while its
// creation was in flight gets a DELETE_ITEM, unless the whole list is gone
// and its DELETE_LIST is already queued.
func (s *Session) ConciliateItem(ctx context.Context, queueID string, sent models.ItemPayload, created models.TodoItem) error {
	listID, tempID, serverID := sent.ListID, sent.ID, created.ID

	return s.Update(ctx, func(store *EntityStore, queue *Queue) {
		entry, ok := queue.Get(queueID)

		store.ReassignItemID(listID, tempID, serverID)
		queue.ReassignItemID(listID, tempID, serverID)

		if !ok {
			_, listDeleted := queue.FindList(models.DeleteList, listID)
			if !listDeleted || store.HasList(listID) {
				queue.Enqueue(models.DeleteItem, models.ItemPayload{ListID: listID, ID: serverID})
			}
			return
		}

		current, _ := entry.ItemPayload()
		if current == sent {
			queue.Dequeue(queueID)
			store.UpdateItem(listID, serverID, created.Description, created.Completed)
			return
		}

		current.ID = serverID
		queue.Replace(models.PendingOperation{QueueID: queueID, Kind: models.UpdateItem, Payload: current})
	})
}

func (s *Session) persist(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.persister.SaveState(ctx, s.State()); err != nil {
		s.logger.Err(err).Str("func", "Session.persist").Msg("failed to persist local state")
		return fmt.Errorf("%w: %w", ErrPersistState, err)
	}
	return nil
}

func (s *Session) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func withoutDeletedItems(queue *Queue, listID models.ID, items []models.TodoItem) []models.TodoItem {
	out := make([]models.TodoItem, 0, len(items))
	for _, item := range items {
		if _, deleted := queue.FindItem(models.DeleteItem, listID, item.ID); deleted {
			continue
		}
		out = append(out, item)
	}
	return out
}
