// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	listRepository store.ListRepository
	scheduler      CompletionScheduler

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, listRepository store.ListRepository, scheduler CompletionScheduler, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		listRepository: listRepository,
		scheduler:      scheduler,
		logger:         logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	item.Description = strings.TrimSpace(item.Description)
	return s.itemRepository.CreateItem(ctx, item)
}

// GetItems returns store.ErrListNotFound for a missing list rather than an
// empty slice.
func (s *itemService) GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error) {
	if _, err := s.listRepository.GetList(ctx, listID); err != nil {
		return nil, err
	}
	return s.itemRepository.GetItems(ctx, listID)
}

func (s *itemService) UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	item.Description = strings.TrimSpace(item.Description)
	return s.itemRepository.UpdateItem(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, listID, id models.ID) error {
	return s.itemRepository.DeleteItem(ctx, listID, id)
}

func (s *itemService) CompleteAll(ctx context.Context, listID models.ID, completed bool) error {
	if _, err := s.listRepository.GetList(ctx, listID); err != nil {
		return err
	}

	if err := s.scheduler.Schedule(ctx, listID, completed); err != nil {
		return fmt.Errorf("%w: %w", ErrSchedulerBusy, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "itemService.CompleteAll").
		Int64("list_id", int64(listID)).
		Bool("completed", completed).
		Msg("bulk completion scheduled")
	return nil
}
