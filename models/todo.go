// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// TemporaryIDThreshold separates client-minted ids from server ids.
// Temporary ids are millisecond timestamps and are always above it.
const TemporaryIDThreshold ID = 10_000_000_000

// ID identifies a todo list or a todo item. Ids assigned by the server are
// small positive integers; ids minted offline are millisecond timestamps.
type ID int64

// IsTemporary reports whether id was minted locally and has not yet been
// replaced by a server-assigned id.
func (id ID) IsTemporary() bool {
	return id > TemporaryIDThreshold
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TodoList is a named, ordered collection of items.
//
// Dirty is set while the list carries local modifications that the server
// has not confirmed yet; a dirty list wins over the server copy during
// reconciliation.
type TodoList struct {
	ID    ID         `json:"id"`
	Name  string     `json:"name"`
	Todos []TodoItem `json:"todos"`
	Dirty bool       `json:"dirty"`
}

// TodoItem belongs to exactly one list.
//
// Pending is true while the creation of the item has not been confirmed by
// the server (the item still carries a temporary id).
type TodoItem struct {
	ID          ID     `json:"id"`
	ListID      ID     `json:"list_id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Pending     bool   `json:"pending,omitempty"`
}

// Key returns the list id.
func (l TodoList) Key() ID { return l.ID }

// IsDirty reports whether the list carries unconfirmed local changes.
func (l TodoList) IsDirty() bool { return l.Dirty }

// WithDirty returns a copy of the list with the Dirty flag set to dirty.
func (l TodoList) WithDirty(dirty bool) TodoList {
	l.Dirty = dirty
	return l
}

// Key returns the item id.
func (it TodoItem) Key() ID { return it.ID }

// IsDirty is always false: items carry no dirty flag.
func (it TodoItem) IsDirty() bool { return false }

// WithDirty returns the item unchanged.
func (it TodoItem) WithDirty(bool) TodoItem { return it }

// Clone returns a deep copy of the list, including its items.
func (l TodoList) Clone() TodoList {
	if l.Todos != nil {
		todos := make([]TodoItem, len(l.Todos))
		copy(todos, l.Todos)
		l.Todos = todos
	}
	return l
}

