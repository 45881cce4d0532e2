// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientListService handles user actions on lists. Each action is applied to
// the local state first and reported with an [models.Outcome]; network
// failures never surface as errors.
type ClientListService interface {
	// Create adds a list and returns its id: the server id when the creation
	// was confirmed, a temporary id otherwise.
	Create(ctx context.Context, name string) (models.ID, models.Outcome, error)
	Rename(ctx context.Context, id models.ID, name string) (models.Outcome, error)
	Delete(ctx context.Context, id models.ID) (models.Outcome, error)
}

// ClientItemService handles user actions on the items of a list.
type ClientItemService interface {
	Create(ctx context.Context, listID models.ID, description string) (models.ID, models.Outcome, error)
	Edit(ctx context.Context, listID, id models.ID, description string) (models.Outcome, error)
	Toggle(ctx context.Context, listID, id models.ID) (models.Outcome, error)
	Delete(ctx context.Context, listID, id models.ID) (models.Outcome, error)
	// CompleteAll asks the server to set the completed flag of every item in
	// the list asynchronously. The result arrives as a list event.
	CompleteAll(ctx context.Context, listID models.ID, completed bool) (models.Outcome, error)
}

// ClientSnapshotService fetches server snapshots and merges them into the
// local state.
type ClientSnapshotService interface {
	RefreshLists(ctx context.Context) error
	RefreshItems(ctx context.Context, listID models.ID) error
	// HandleEvent reacts to a list event pushed by the server.
	HandleEvent(ctx context.Context, event models.ListEvent) error
}

// ClientSyncService replays the pending operation queue against the server.
type ClientSyncService interface {
	// ProcessQueue drains the queue once: list operations first, then item
	// operations, one at a time. It returns [ErrDrainInProgress] when called
	// while a drain is running. Safe to call on an empty queue.
	ProcessQueue(ctx context.Context) (models.DrainReport, error)

	// ProcessOperation replays a single queue entry, waiting for any entry
	// being replayed to finish first.
	ProcessOperation(ctx context.Context, queueID string) models.OperationResult
}

// ClientSyncJob triggers queue drains in the background: at start, when the
// connection comes back, on a ticker and on demand.
type ClientSyncJob interface {
	Start(ctx context.Context)
	// Trigger requests a drain. Requests made while one is pending are
	// coalesced.
	Trigger()
	Stop()
}
