// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify fans list events out to the websocket subscribers of each
// list.
package notify

import (
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// defaultSubscriberBuffer is the number of events a slow subscriber may lag
// behind before further events are dropped for it.
const defaultSubscriberBuffer = 16

// Publisher delivers an event to everyone watching its list.
type Publisher interface {
	Publish(event models.ListEvent)
}

// Hub keeps the subscribers of every list. The zero value is not usable;
// create one with [NewHub].
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[models.ID]map[int]chan models.ListEvent

	logger *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		subs:   make(map[models.ID]map[int]chan models.ListEvent),
		logger: logger,
	}
}

// Subscribe registers a subscriber for listID. The returned cancel func
// unregisters it and closes the channel; it may be called more than once.
func (h *Hub) Subscribe(listID models.ID) (<-chan models.ListEvent, func()) {
	ch := make(chan models.ListEvent, defaultSubscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.subs[listID] == nil {
		h.subs[listID] = make(map[int]chan models.ListEvent)
	}
	h.subs[listID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[listID], id)
			if len(h.subs[listID]) == 0 {
				delete(h.subs, listID)
			}
			close(ch)
		})
	}
}

// Publish implements [Publisher]. It never blocks: a subscriber whose buffer
// is full misses the event.
func (h *Hub) Publish(event models.ListEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[event.ListID] {
		select {
		case ch <- event:
		default:
			h.logger.Warn().
				Str("func", "Hub.Publish").
				Int64("list_id", int64(event.ListID)).
				Str("event", event.Event).
				Msg("subscriber is too slow, event dropped")
		}
	}
}

// Subscribers returns the number of subscribers of listID.
func (h *Hub) Subscribers(listID models.ID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[listID])
}
