// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the todo server.
//
// [ServerAdapter] is the REST surface the sync engine replays operations
// against, [ConnectivityMonitor] reports whether the server is reachable,
// and [EventListener] receives list-scoped push notifications over a
// websocket.
//
// Non-2xx responses are returned as *[StatusError] values that unwrap to the
// sentinels in errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound]
// for 404) or [StatusCode] to read the numeric status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the todo server. Implementations
// are responsible for serialisation and for mapping transport-level errors
// to the sentinel values defined in this package.
type ServerAdapter interface {
	// CreateList creates a list and returns the server copy carrying the
	// permanent id. A response without an id yields [ErrInvalidResponse].
	CreateList(ctx context.Context, name string) (models.TodoList, error)

	// UpdateList renames a list and returns the server copy.
	UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error)

	// DeleteList deletes a list together with its items.
	DeleteList(ctx context.Context, id models.ID) error

	// CreateItem creates an item in listID and returns the server copy
	// carrying the permanent id. A response without an id yields
	// [ErrInvalidResponse].
	CreateItem(ctx context.Context, listID models.ID, description string, completed bool) (models.TodoItem, error)

	// UpdateItem overwrites the description and completed flag of an item.
	UpdateItem(ctx context.Context, listID, itemID models.ID, description string, completed bool) (models.TodoItem, error)

	// DeleteItem deletes one item.
	DeleteItem(ctx context.Context, listID, itemID models.ID) error

	// GetLists fetches every list with its items.
	GetLists(ctx context.Context) ([]models.TodoList, error)

	// GetItems fetches the items of one list.
	GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error)

	// ToggleCompleteAsync asks the server to set the completed flag of every
	// item in a list. The server applies it in the background and announces
	// the result on the list's push channel.
	ToggleCompleteAsync(ctx context.Context, listID models.ID, completed bool) error

	// Ping checks that the server is reachable and healthy.
	Ping(ctx context.Context) error
}

// ConnectivityMonitor reports whether the server is reachable.
type ConnectivityMonitor interface {
	// Online returns the last observed connectivity state.
	Online() bool

	// Transitions delivers the new state after every change. Only the latest
	// state is kept for a slow reader.
	Transitions() <-chan bool

	// Run probes connectivity until ctx is done.
	Run(ctx context.Context)
}

// EventListener subscribes to the push channel of one list.
type EventListener interface {
	// Listen opens one connection and calls handle for every event until
	// ctx is done or the connection drops.
	Listen(ctx context.Context, listID models.ID, handle func(models.ListEvent)) error

	// Watch is Listen with reconnects. It returns when ctx is done.
	Watch(ctx context.Context, listID models.ID, handle func(models.ListEvent))
}
