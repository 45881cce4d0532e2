// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	ListService    ListService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, scheduler CompletionScheduler, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		ListService: NewListValidationService().Wrap(
			NewListService(storages.ListRepository, logger),
		),
		ItemService: NewItemValidationService().Wrap(
			NewItemService(storages.ItemRepository, storages.ListRepository, scheduler, logger),
		),
		AppInfoService: appInfo,
	}, nil
}
