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

// clientListService applies list actions optimistically and records them in
// the queue. When the client is online and nothing else is queued for the
// list, the new entry is replayed at once.
type clientListService struct {
	session *state.Session
	sync    ClientSyncService
	monitor adapter.ConnectivityMonitor
	logger  *logger.Logger
}

func NewClientListService(session *state.Session, sync ClientSyncService, monitor adapter.ConnectivityMonitor, logger *logger.Logger) ClientListService {
	return &clientListService{
		session: session,
		sync:    sync,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *clientListService) Create(ctx context.Context, name string) (models.ID, models.Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, models.QueuedForRetry, ErrEmptyListName
	}

	id := s.session.NewTemporaryID()
	var queueID string
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		store.AddList(id, name)
		queue.QueueListCreate(id, name)
		op, _ := queue.FindList(models.AddList, id)
		queueID = op.QueueID
	})
	if err != nil {
		return id, models.QueuedForRetry, err
	}

	if !s.monitor.Online() {
		return id, models.QueuedForRetry, nil
	}

	res := s.sync.ProcessOperation(ctx, queueID)
	if res.Outcome == models.Applied && res.ID != 0 {
		id = res.ID
	}
	return id, res.Outcome, nil
}

func (s *clientListService) Rename(ctx context.Context, id models.ID, name string) (models.Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.QueuedForRetry, ErrEmptyListName
	}

	var (
		known, direct bool
		queueID       string
	)
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		if known = store.HasList(id); !known {
			return
		}
		direct = !id.IsTemporary() && !hasListLevelOperation(queue, id)

		store.SetListName(id, name)
		store.SetListDirty(id, true)
		queue.QueueListRename(id, name)
		if op, ok := queue.FindList(models.UpdateList, id); ok {
			queueID = op.QueueID
		}
	})
	if !known {
		return models.QueuedForRetry, ErrUnknownList
	}
	if err != nil {
		return models.QueuedForRetry, err
	}

	return s.replay(ctx, direct, queueID), nil
}

func (s *clientListService) Delete(ctx context.Context, id models.ID) (models.Outcome, error) {
	var (
		known, direct bool
		queueID       string
	)
	err := s.session.Update(ctx, func(store *state.EntityStore, queue *state.Queue) {
		if known = store.HasList(id); !known {
			return
		}
		direct = !id.IsTemporary() && !hasListLevelOperation(queue, id)

		store.RemoveList(id)
		queue.QueueListDelete(id)
		if op, ok := queue.FindList(models.DeleteList, id); ok {
			queueID = op.QueueID
		}
	})
	if !known {
		return models.QueuedForRetry, ErrUnknownList
	}
	if err != nil {
		return models.QueuedForRetry, err
	}

	// a list that never reached the server is simply gone
	if queueID == "" {
		return models.Applied, nil
	}
	return s.replay(ctx, direct, queueID), nil
}

func (s *clientListService) replay(ctx context.Context, direct bool, queueID string) models.Outcome {
	if !direct || queueID == "" || !s.monitor.Online() {
		return models.QueuedForRetry
	}
	return s.sync.ProcessOperation(ctx, queueID).Outcome
}

func hasListLevelOperation(queue *state.Queue, id models.ID) bool {
	for _, kind := range []models.OperationKind{models.AddList, models.UpdateList, models.DeleteList} {
		if _, ok := queue.FindList(kind, id); ok {
			return true
		}
	}
	return false
}
