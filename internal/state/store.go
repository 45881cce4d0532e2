// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// EntityStore holds the locally known lists and their items.
//
// Every mutation that targets a list or item the store does not hold is a
// no-op. Mutating methods change the receiver; [EntityStore.With] derives a
// new value instead. EntityStore is not safe for concurrent use; see
// [Session].
type EntityStore struct {
	lists []models.TodoList
}

// NewEntityStore returns a store seeded with a deep copy of lists.
func NewEntityStore(lists []models.TodoList) *EntityStore {
	s := &EntityStore{}
	s.SetLists(lists)
	return s
}

// Lists returns a deep copy of every list in display order.
func (s *EntityStore) Lists() []models.TodoList {
	return cloneLists(s.lists)
}

// List returns a deep copy of the list with the given id.
func (s *EntityStore) List(id models.ID) (models.TodoList, bool) {
	i := s.listIndex(id)
	if i < 0 {
		return models.TodoList{}, false
	}
	return s.lists[i].Clone(), true
}

// HasList reports whether the store holds a list with the given id.
func (s *EntityStore) HasList(id models.ID) bool {
	return s.listIndex(id) >= 0
}

// Item returns the item with the given id inside the given list.
func (s *EntityStore) Item(listID, id models.ID) (models.TodoItem, bool) {
	li, ii := s.itemIndex(listID, id)
	if ii < 0 {
		return models.TodoItem{}, false
	}
	return s.lists[li].Todos[ii], true
}

// SetLists replaces the whole collection.
func (s *EntityStore) SetLists(lists []models.TodoList) {
	s.lists = cloneLists(lists)
	for i := range s.lists {
		if s.lists[i].Todos == nil {
			s.lists[i].Todos = []models.TodoItem{}
		}
	}
}

// AddList appends a clean, empty list. Adding an id already present is a
// no-op.
func (s *EntityStore) AddList(id models.ID, name string) {
	if s.listIndex(id) >= 0 {
		return
	}
	s.lists = append(s.lists, models.TodoList{ID: id, Name: name, Todos: []models.TodoItem{}})
}

// RemoveList drops the list and all of its items.
func (s *EntityStore) RemoveList(id models.ID) {
	s.lists = slices.DeleteFunc(s.lists, func(l models.TodoList) bool { return l.ID == id })
}

// ReassignListID rewrites a list id, including the ListID of its items.
func (s *EntityStore) ReassignListID(oldID, newID models.ID) {
	i := s.listIndex(oldID)
	if i < 0 {
		return
	}
	s.lists[i].ID = newID
	for j := range s.lists[i].Todos {
		s.lists[i].Todos[j].ListID = newID
	}
}

// UpdateList sets the name and/or dirty flag of a list. Nil arguments are
// left untouched.
func (s *EntityStore) UpdateList(id models.ID, name *string, dirty *bool) {
	i := s.listIndex(id)
	if i < 0 {
		return
	}
	if name != nil {
		s.lists[i].Name = *name
	}
	if dirty != nil {
		s.lists[i].Dirty = *dirty
	}
}

// SetListName renames a list without touching its dirty flag.
func (s *EntityStore) SetListName(id models.ID, name string) {
	s.UpdateList(id, &name, nil)
}

// SetListDirty sets the dirty flag of a list.
func (s *EntityStore) SetListDirty(id models.ID, dirty bool) {
	s.UpdateList(id, nil, &dirty)
}

// AddItem appends an incomplete item to a list.
func (s *EntityStore) AddItem(listID, id models.ID, description string, pending bool) {
	i := s.listIndex(listID)
	if i < 0 {
		return
	}
	if _, ii := s.itemIndex(listID, id); ii >= 0 {
		return
	}
	s.lists[i].Todos = append(s.lists[i].Todos, models.TodoItem{
		ID:          id,
		ListID:      listID,
		Description: description,
		Pending:     pending,
	})
}

// ToggleItem flips the completed flag of an item.
func (s *EntityStore) ToggleItem(listID, id models.ID) {
	li, ii := s.itemIndex(listID, id)
	if ii < 0 {
		return
	}
	s.lists[li].Todos[ii].Completed = !s.lists[li].Todos[ii].Completed
}

// UpdateItem overwrites the description and completed flag of an item.
func (s *EntityStore) UpdateItem(listID, id models.ID, description string, completed bool) {
	li, ii := s.itemIndex(listID, id)
	if ii < 0 {
		return
	}
	s.lists[li].Todos[ii].Description = description
	s.lists[li].Todos[ii].Completed = completed
}

// SetAllCompleted sets the completed flag of every item in a list.
func (s *EntityStore) SetAllCompleted(listID models.ID, completed bool) {
	i := s.listIndex(listID)
	if i < 0 {
		return
	}
	for j := range s.lists[i].Todos {
		s.lists[i].Todos[j].Completed = completed
	}
}

// RemoveItem drops an item from its list.
func (s *EntityStore) RemoveItem(listID, id models.ID) {
	i := s.listIndex(listID)
	if i < 0 {
		return
	}
	s.lists[i].Todos = slices.DeleteFunc(s.lists[i].Todos, func(it models.TodoItem) bool { return it.ID == id })
}

// ReassignItemID rewrites an item id and marks the item confirmed.
func (s *EntityStore) ReassignItemID(listID, oldID, newID models.ID) {
	li, ii := s.itemIndex(listID, oldID)
	if ii < 0 {
		return
	}
	s.lists[li].Todos[ii].ID = newID
	s.lists[li].Todos[ii].Pending = false
}

// SetItemsFetched merges a fresh server fetch into the items of a list with
// [MergeItems].
func (s *EntityStore) SetItemsFetched(listID models.ID, fetched []models.TodoItem) {
	i := s.listIndex(listID)
	if i < 0 {
		return
	}
	normalized := make([]models.TodoItem, len(fetched))
	for j, item := range fetched {
		item.ListID = listID
		normalized[j] = item
	}
	s.lists[i].Todos = MergeItems(s.lists[i].Todos, normalized)
}

// ApplyListsSnapshot merges a server list snapshot into the store.
//
// Lists are reconciled with [Merge]. When the server copy of a list wins,
// its items are reconciled against the local items with [MergeItems] so that
// local-only items survive; a server list that carries no items keeps
// the local items as they are.
func (s *EntityStore) ApplyListsSnapshot(server []models.TodoList) {
	localByID := make(map[models.ID]models.TodoList, len(s.lists))
	for _, l := range s.lists {
		localByID[l.ID] = l
	}
	serverByID := make(map[models.ID]models.TodoList, len(server))
	for _, l := range server {
		serverByID[l.ID] = l
	}

	merged := Merge(s.lists, cloneLists(server))
	for i := range merged {
		local, hasLocal := localByID[merged[i].ID]
		remote, hasRemote := serverByID[merged[i].ID]
		switch {
		case !hasLocal || !hasRemote:
		case remote.Todos == nil:
			merged[i].Todos = local.Todos
		default:
			merged[i].Todos = MergeItems(local.Todos, remote.Todos)
		}
		if merged[i].Todos == nil {
			merged[i].Todos = []models.TodoItem{}
		}
	}
	s.lists = cloneLists(merged)
}

// With returns a new store holding the result of fn applied to a copy of s.
// s itself is never modified.
func (s *EntityStore) With(fn func(next *EntityStore)) *EntityStore {
	next := &EntityStore{lists: cloneLists(s.lists)}
	fn(next)
	return next
}

// MaxTemporaryID returns the largest temporary id held by the store, or 0.
func (s *EntityStore) MaxTemporaryID() models.ID {
	var maxID models.ID
	for _, l := range s.lists {
		if l.ID.IsTemporary() && l.ID > maxID {
			maxID = l.ID
		}
		for _, it := range l.Todos {
			if it.ID.IsTemporary() && it.ID > maxID {
				maxID = it.ID
			}
		}
	}
	return maxID
}

func (s *EntityStore) listIndex(id models.ID) int {
	return slices.IndexFunc(s.lists, func(l models.TodoList) bool { return l.ID == id })
}

func (s *EntityStore) itemIndex(listID, id models.ID) (int, int) {
	li := s.listIndex(listID)
	if li < 0 {
		return -1, -1
	}
	ii := slices.IndexFunc(s.lists[li].Todos, func(it models.TodoItem) bool { return it.ID == id })
	return li, ii
}

func cloneLists(lists []models.TodoList) []models.TodoList {
	if lists == nil {
		return nil
	}
	out := make([]models.TodoList, len(lists))
	for i, l := range lists {
		out[i] = l.Clone()
	}
	return out
}
