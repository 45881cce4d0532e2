// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ListRepository persists todo lists on the server.
type ListRepository interface {
	CreateList(ctx context.Context, name string) (models.TodoList, error)
	// GetLists returns every list with its items embedded.
	GetLists(ctx context.Context) ([]models.TodoList, error)
	GetList(ctx context.Context, id models.ID) (models.TodoList, error)
	UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error)
	DeleteList(ctx context.Context, id models.ID) error
}

// ItemRepository persists todo items on the server.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)
	GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error)
	UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)
	DeleteItem(ctx context.Context, listID, id models.ID) error
	SetAllCompleted(ctx context.Context, listID models.ID, completed bool) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
