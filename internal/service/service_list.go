// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type listService struct {
	listRepository store.ListRepository

	logger *logger.Logger
}

func NewListService(listRepository store.ListRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository: listRepository,
		logger:         logger,
	}
}

func (s *listService) CreateList(ctx context.Context, name string) (models.TodoList, error) {
	return s.listRepository.CreateList(ctx, strings.TrimSpace(name))
}

func (s *listService) GetLists(ctx context.Context) ([]models.TodoList, error) {
	return s.listRepository.GetLists(ctx)
}

func (s *listService) GetList(ctx context.Context, id models.ID) (models.TodoList, error) {
	return s.listRepository.GetList(ctx, id)
}

func (s *listService) UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error) {
	return s.listRepository.UpdateList(ctx, id, strings.TrimSpace(name))
}

func (s *listService) DeleteList(ctx context.Context, id models.ID) error {
	return s.listRepository.DeleteList(ctx, id)
}
