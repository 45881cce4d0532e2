// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// clientSyncService is the queue processor.
//
// draining keeps drains from overlapping. gate serializes the replay of
// single entries between a drain and direct user actions, so no entry is
// ever submitted twice. Neither is held while the session is locked.
type clientSyncService struct {
	session *state.Session
	adapter adapter.ServerAdapter

	draining atomic.Bool
	gate     sync.Mutex

	logger *logger.Logger
}

// NewClientSyncService creates the queue processor for session.
func NewClientSyncService(session *state.Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		session: session,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// ProcessQueue implements [ClientSyncService].
//
// The queue is snapshotted twice: list operations first, then, after they
// have rewritten list ids, item operations. Every entry is re-read before it
// is replayed; entries removed in the meantime are skipped.
func (s *clientSyncService) ProcessQueue(ctx context.Context) (models.DrainReport, error) {
	if !s.draining.CompareAndSwap(false, true) {
		return models.DrainReport{}, ErrDrainInProgress
	}
	defer s.draining.Store(false)

	log := logger.FromContext(ctx)
	var report models.DrainReport

	for _, phase := range []func() []models.PendingOperation{s.session.ListOperations, s.session.ItemOperations} {
		for _, op := range phase() {
			if ctx.Err() != nil {
				log.Warn().Str("func", "clientSyncService.ProcessQueue").Msg("drain interrupted")
				return report, ctx.Err()
			}
			if res, ok := s.replay(ctx, op.QueueID); ok {
				report.Results = append(report.Results, res)
			}
		}
	}

	log.Info().
		Str("func", "clientSyncService.ProcessQueue").
		Int("applied", report.Count(models.Applied)).
		Int("queued", report.Count(models.QueuedForRetry)).
		Int("resolved", report.Count(models.TerminalResolved)).
		Int("left", s.session.PendingCount()).
		Msg("queue drained")

	return report, nil
}

// ProcessOperation implements [ClientSyncService]. An entry that is already
// gone was resolved by someone else and is reported as applied.
func (s *clientSyncService) ProcessOperation(ctx context.Context, queueID string) models.OperationResult {
	res, ok := s.replay(ctx, queueID)
	if !ok {
		return models.OperationResult{QueueID: queueID, Outcome: models.Applied}
	}
	return res
}

func (s *clientSyncService) replay(ctx context.Context, queueID string) (models.OperationResult, bool) {
	s.gate.Lock()
	defer s.gate.Unlock()

	op, ok := s.session.Operation(queueID)
	if !ok {
		return models.OperationResult{}, false
	}

	res := s.process(ctx, op)
	res.QueueID, res.Kind = op.QueueID, op.Kind

	if res.Err != nil {
		logger.FromContext(ctx).Debug().Err(res.Err).
			Str("func", "clientSyncService.replay").
			Str("queue_id", op.QueueID).
			Str("kind", string(op.Kind)).
			Str("outcome", res.Outcome.String()).
			Msg("operation not applied")
	}
	return res, true
}

func (s *clientSyncService) process(ctx context.Context, op models.PendingOperation) models.OperationResult {
	switch p := op.Payload.(type) {
	case models.ListPayload:
		switch op.Kind {
		case models.AddList:
			return s.addList(ctx, op.QueueID, p)
		case models.UpdateList:
			return s.updateList(ctx, op.QueueID, p)
		case models.DeleteList:
			return s.deleteList(ctx, p)
		}
	case models.ItemPayload:
		switch op.Kind {
		case models.AddItem:
			return s.addItem(ctx, op.QueueID, p)
		case models.UpdateItem:
			return s.updateItem(ctx, op.QueueID, p)
		case models.DeleteItem:
			return s.deleteItem(ctx, op.QueueID, p)
		}
	}

	logger.FromContext(ctx).Error().
		Str("func", "clientSyncService.process").
		Str("queue_id", op.QueueID).
		Str("kind", string(op.Kind)).
		Msg("payload does not match operation kind")
	return retry(op.EntityID(), fmt.Errorf("%w: %s", ErrMalformedOperation, op.Kind))
}

func (s *clientSyncService) addList(ctx context.Context, queueID string, p models.ListPayload) models.OperationResult {
	created, err := s.adapter.CreateList(ctx, p.Name)
	if err != nil {
		s.logFailure(ctx, "clientSyncService.addList", err)
		return retry(p.ID, err)
	}

	return applied(created.ID, s.session.ConciliateList(ctx, queueID, p, created))
}

// updateList marks the list clean with the server name, unless the entry
// was rewritten while the request was in flight: then it stays queued with
// the newer name.
func (s *clientSyncService) updateList(ctx context.Context, queueID string, p models.ListPayload) models.OperationResult {
	updated, err := s.adapter.UpdateList(ctx, p.ID, p.Name)
	switch {
	case err == nil:
	case classifyAdapterError(err) == failureNotFound:
		return resolved(p.ID, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
			store.RemoveList(p.ID)
			queue.ClearForList(p.ID)
		}))
	default:
		s.logFailure(ctx, "clientSyncService.updateList", err)
		return retry(p.ID, err)
	}

	return applied(p.ID, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		current, ok := queue.Get(queueID)
		if !ok {
			return
		}
		if cp, _ := current.ListPayload(); cp != p {
			return
		}
		queue.Dequeue(queueID)
		clean := false
		store.UpdateList(p.ID, &updated.Name, &clean)
	}))
}

func (s *clientSyncService) deleteList(ctx context.Context, p models.ListPayload) models.OperationResult {
	err := s.adapter.DeleteList(ctx, p.ID)
	if err != nil && classifyAdapterError(err) != failureNotFound {
		s.logFailure(ctx, "clientSyncService.deleteList", err)
		return retry(p.ID, err)
	}

	persistErr := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		store.RemoveList(p.ID)
		queue.ClearForList(p.ID)
	})
	if err != nil {
		return resolved(p.ID, persistErr)
	}
	return applied(p.ID, persistErr)
}

// addItem creates the item under the current list id. It waits while the
// list itself has not reached the server.
//
// A 404 means the list is gone on the server: the item cannot be created
// anywhere and is dropped locally.
func (s *clientSyncService) addItem(ctx context.Context, queueID string, p models.ItemPayload) models.OperationResult {
	if p.ListID.IsTemporary() {
		return retry(p.ID, ErrParentNotSynced)
	}

	created, err := s.adapter.CreateItem(ctx, p.ListID, p.Description, p.Completed)
	switch {
	case err == nil:
	case classifyAdapterError(err) == failureNotFound:
		return resolved(p.ID, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
			store.RemoveItem(p.ListID, p.ID)
			queue.PurgeItem(p.ListID, p.ID)
		}))
	default:
		s.logFailure(ctx, "clientSyncService.addItem", err)
		return retry(p.ID, err)
	}

	return applied(created.ID, s.session.ConciliateItem(ctx, queueID, p, created))
}

func (s *clientSyncService) updateItem(ctx context.Context, queueID string, p models.ItemPayload) models.OperationResult {
	updated, err := s.adapter.UpdateItem(ctx, p.ListID, p.ID, p.Description, p.Completed)
	switch {
	case err == nil:
	case classifyAdapterError(err) == failureNotFound:
		return resolved(p.ID, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
			store.RemoveItem(p.ListID, p.ID)
			queue.PurgeItem(p.ListID, p.ID)
		}))
	default:
		s.logFailure(ctx, "clientSyncService.updateItem", err)
		return retry(p.ID, err)
	}

	return applied(p.ID, s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		current, ok := queue.Get(queueID)
		if !ok {
			return
		}
		if cp, _ := current.ItemPayload(); cp != p {
			return
		}
		queue.Dequeue(queueID)
		store.UpdateItem(p.ListID, p.ID, updated.Description, updated.Completed)
	}))
}

// deleteItem treats a 404 as success. When the owning list is gone locally
// as well, every operation still queued under it is dropped.
func (s *clientSyncService) deleteItem(ctx context.Context, queueID string, p models.ItemPayload) models.OperationResult {
	err := s.adapter.DeleteItem(ctx, p.ListID, p.ID)
	notFound := err != nil && classifyAdapterError(err) == failureNotFound
	if err != nil && !notFound {
		s.logFailure(ctx, "clientSyncService.deleteItem", err)
		return retry(p.ID, err)
	}

	persistErr := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		store.RemoveItem(p.ListID, p.ID)
		queue.Dequeue(queueID)
		queue.PurgeItem(p.ListID, p.ID)
		if notFound && !store.HasList(p.ListID) {
			queue.ClearForList(p.ListID)
		}
	})
	if notFound {
		return resolved(p.ID, persistErr)
	}
	return applied(p.ID, persistErr)
}

func (s *clientSyncService) logFailure(ctx context.Context, fn string, err error) {
	log := logger.FromContext(ctx)
	class := classifyAdapterError(err)
	if class == failureInvalidResponse {
		log.Error().Err(err).Str("func", fn).Msg("unexpected server response, operation kept in queue")
		return
	}
	log.Warn().Err(err).Str("func", fn).Str("failure", class.String()).Msg("operation kept in queue")
}

func applied(id models.ID, err error) models.OperationResult {
	return models.OperationResult{ID: id, Outcome: models.Applied, Err: err}
}

func retry(id models.ID, err error) models.OperationResult {
	return models.OperationResult{ID: id, Outcome: models.QueuedForRetry, Err: err}
}

func resolved(id models.ID, err error) models.OperationResult {
	return models.OperationResult{ID: id, Outcome: models.TerminalResolved, Err: err}
}
