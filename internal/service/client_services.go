// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
)

type ClientServices struct {
	ListService     ClientListService
	ItemService     ClientItemService
	SnapshotService ClientSnapshotService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

func NewClientServices(
	session *state.Session,
	serverAdapter adapter.ServerAdapter,
	monitor adapter.ConnectivityMonitor,
	workers config.ClientWorkers,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(session, serverAdapter, logger)
	snapshotSvc := NewClientSnapshotService(session, serverAdapter, logger)

	return &ClientServices{
		ListService:     NewClientListService(session, syncSvc, monitor, logger),
		ItemService:     NewClientItemService(session, serverAdapter, syncSvc, monitor, logger),
		SnapshotService: snapshotSvc,
		SyncService:     syncSvc,
		SyncJob:         NewClientSyncJob(syncSvc, snapshotSvc, monitor, session, workers.SyncInterval, workers.SyncDebounce, logger),
	}
}
