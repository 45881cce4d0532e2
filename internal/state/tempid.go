// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// TempIDGenerator mints temporary ids from the wall clock in milliseconds.
// Ids are strictly increasing for the lifetime of the generator.
type TempIDGenerator struct {
	mu   sync.Mutex
	last models.ID
	now  func() time.Time
}

// NewTempIDGenerator returns a generator backed by time.Now.
func NewTempIDGenerator() *TempIDGenerator {
	return &TempIDGenerator{now: time.Now}
}

// Next returns a fresh temporary id.
func (g *TempIDGenerator) Next() models.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := models.ID(g.now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure later ids are greater than id. Used after loading
// persisted state that may hold ids minted by a previous run.
func (g *TempIDGenerator) Observe(id models.ID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
