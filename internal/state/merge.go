// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "github.com/MKhiriev/go-todo-keeper/models"

// Record is an entity that can take part in snapshot reconciliation.
type Record[T any] interface {
	Key() models.ID
	IsDirty() bool
	WithDirty(dirty bool) T
}

// Merge reconciles a server snapshot with the local copy of the same
// collection.
//
// The result starts as the server snapshot in server order. Every dirty
// local record then replaces the server record with the same key, or is
// appended if the server does not know it; its dirty flag is cleared only
// when the server already has that key. Clean local records the server does
// not know are appended; clean local records the server does know are
// discarded in favor of the server copy. Appended records keep local order.
//
// Once the server reflects every dirty local record, re-merging the result
// against the same snapshot returns the result unchanged.
func Merge[T Record[T]](local, server []T) []T {
	merged := make([]T, 0, len(server)+len(local))
	index := make(map[models.ID]int, len(server)+len(local))

	for _, rec := range server {
		if i, ok := index[rec.Key()]; ok {
			merged[i] = rec
			continue
		}
		index[rec.Key()] = len(merged)
		merged = append(merged, rec)
	}
	serverLen := len(merged)

	for _, rec := range local {
		i, ok := index[rec.Key()]
		onServer := ok && i < serverLen

		if rec.IsDirty() {
			rec = rec.WithDirty(!onServer)
			if ok {
				merged[i] = rec
				continue
			}
			index[rec.Key()] = len(merged)
			merged = append(merged, rec)
			continue
		}

		if !ok {
			index[rec.Key()] = len(merged)
			merged = append(merged, rec)
		}
	}

	return merged
}

// MergeItems reconciles the fetched items of one list with the local items
// of the same list. It is [Merge] over items: a fetched item replaces the
// local item with the same id, and local items absent from the fetch are
// kept as they are, since they may be adds the server has not seen yet.
// Fetched items are confirmed, so their Pending flag is cleared.
func MergeItems(local, fetched []models.TodoItem) []models.TodoItem {
	confirmed := make([]models.TodoItem, len(fetched))
	for i, item := range fetched {
		item.Pending = false
		confirmed[i] = item
	}
	return Merge(local, confirmed)
}
