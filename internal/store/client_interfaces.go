// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStateRepository keeps the client state (entity store and pending
// operation queue) across restarts.
type LocalStateRepository interface {
	// LoadState returns the saved state. An empty database yields an empty
	// state and no error.
	LoadState(ctx context.Context) (models.State, error)
	// SaveState replaces the saved state with st in one transaction.
	SaveState(ctx context.Context, st models.State) error
}
