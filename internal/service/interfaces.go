// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ListService interface {
	CreateList(ctx context.Context, name string) (models.TodoList, error)
	GetLists(ctx context.Context) ([]models.TodoList, error)
	GetList(ctx context.Context, id models.ID) (models.TodoList, error)
	UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error)
	DeleteList(ctx context.Context, id models.ID) error
}

type ItemService interface {
	CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)
	GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error)
	UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error)
	DeleteItem(ctx context.Context, listID, id models.ID) error
	// CompleteAll schedules setting the completed flag of every item of the
	// list. The result is published as a list event.
	CompleteAll(ctx context.Context, listID models.ID, completed bool) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CompletionScheduler runs bulk completions in the background.
type CompletionScheduler interface {
	Schedule(ctx context.Context, listID models.ID, completed bool) error
}
