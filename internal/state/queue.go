// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// IDGenerator produces unique queue entry ids.
type IDGenerator interface {
	Generate() string
}

// Queue is the ordered log of mutations not yet confirmed by the server.
//
// Insertion order is preserved; coalescing mutates entries in place. After
// every exported mutation there is at most one entry per entity and family
// (add, update, delete), and at most one family per entity. Queue is not
// safe for concurrent use; see [Session].
type Queue struct {
	ops []models.PendingOperation
	ids IDGenerator
}

// NewQueue returns a queue seeded with a copy of ops.
func NewQueue(ops []models.PendingOperation, ids IDGenerator) *Queue {
	return &Queue{ops: slices.Clone(ops), ids: ids}
}

// Len returns the number of queued operations.
func (q *Queue) Len() int {
	return len(q.ops)
}

// Operations returns a copy of the queue in order.
func (q *Queue) Operations() []models.PendingOperation {
	return slices.Clone(q.ops)
}

// ListOperations returns, in order, the queued operations targeting lists.
func (q *Queue) ListOperations() []models.PendingOperation {
	return q.filter(func(op models.PendingOperation) bool { return op.Kind.IsListKind() })
}

// ItemOperations returns, in order, the queued operations targeting items.
func (q *Queue) ItemOperations() []models.PendingOperation {
	return q.filter(func(op models.PendingOperation) bool { return op.Kind.IsItemKind() })
}

// Get returns the entry with the given queue id.
func (q *Queue) Get(queueID string) (models.PendingOperation, bool) {
	i := q.index(func(op models.PendingOperation) bool { return op.QueueID == queueID })
	if i < 0 {
		return models.PendingOperation{}, false
	}
	return q.ops[i], true
}

// Enqueue appends an operation under a fresh queue id and returns the id.
func (q *Queue) Enqueue(kind models.OperationKind, payload models.Payload) string {
	queueID := q.ids.Generate()
	q.ops = append(q.ops, models.PendingOperation{QueueID: queueID, Kind: kind, Payload: payload})
	return queueID
}

// Dequeue removes the entry with the given queue id. Absent ids are ignored.
func (q *Queue) Dequeue(queueID string) bool {
	return q.remove(func(op models.PendingOperation) bool { return op.QueueID == queueID }) > 0
}

// Replace overwrites the entry with the same queue id, keeping its position.
func (q *Queue) Replace(op models.PendingOperation) bool {
	i := q.index(func(o models.PendingOperation) bool { return o.QueueID == op.QueueID })
	if i < 0 {
		return false
	}
	q.ops[i] = op
	return true
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.ops = nil
}

// ClearForList removes every list operation for listID and every item
// operation under it.
func (q *Queue) ClearForList(listID models.ID) int {
	return q.remove(func(op models.PendingOperation) bool { return op.ListID() == listID })
}

// ReassignListID rewrites the list id of every queued item operation that
// refers to oldID. List operations are left untouched.
func (q *Queue) ReassignListID(oldID, newID models.ID) {
	for i, op := range q.ops {
		p, ok := op.ItemPayload()
		if !ok || p.ListID != oldID {
			continue
		}
		p.ListID = newID
		q.ops[i].Payload = p
	}
}

// ReassignItemID rewrites the id of every queued operation on the item.
func (q *Queue) ReassignItemID(listID, oldID, newID models.ID) {
	for i, op := range q.ops {
		p, ok := op.ItemPayload()
		if !ok || p.ListID != listID || p.ID != oldID {
			continue
		}
		p.ID = newID
		q.ops[i].Payload = p
	}
}

// FindList returns the queued operation of the given kind on a list.
func (q *Queue) FindList(kind models.OperationKind, id models.ID) (models.PendingOperation, bool) {
	i := q.index(matchList(kind, id))
	if i < 0 {
		return models.PendingOperation{}, false
	}
	return q.ops[i], true
}

// FindItem returns the queued operation of the given kind on an item.
func (q *Queue) FindItem(kind models.OperationKind, listID, id models.ID) (models.PendingOperation, bool) {
	i := q.index(matchItem(kind, listID, id))
	if i < 0 {
		return models.PendingOperation{}, false
	}
	return q.ops[i], true
}

// HasListOperations reports whether any entry refers to the list, either
// directly or through one of its items.
func (q *Queue) HasListOperations(listID models.ID) bool {
	return q.index(func(op models.PendingOperation) bool { return op.ListID() == listID }) >= 0
}

// HasItemOperations reports whether any entry targets the item.
func (q *Queue) HasItemOperations(listID, id models.ID) bool {
	return q.index(func(op models.PendingOperation) bool {
		p, ok := op.ItemPayload()
		return ok && p.ListID == listID && p.ID == id
	}) >= 0
}

// ── list coalescing ──────────────────────────────────────────────────────────

// UpdateQueuedAddListName rewrites the name carried by a queued ADD_LIST.
func (q *Queue) UpdateQueuedAddListName(id models.ID, name string) bool {
	return q.setListName(models.AddList, id, name)
}

// UpdateQueuedUpdateList rewrites the name carried by a queued UPDATE_LIST.
func (q *Queue) UpdateQueuedUpdateList(id models.ID, name string) bool {
	return q.setListName(models.UpdateList, id, name)
}

// RemoveQueuedUpdateList drops a queued UPDATE_LIST.
func (q *Queue) RemoveQueuedUpdateList(id models.ID) bool {
	return q.remove(matchList(models.UpdateList, id)) > 0
}

// RemoveQueuedDeleteList drops a queued DELETE_LIST.
func (q *Queue) RemoveQueuedDeleteList(id models.ID) bool {
	return q.remove(matchList(models.DeleteList, id)) > 0
}

// ── item coalescing ──────────────────────────────────────────────────────────

// UpdateQueuedAddItem rewrites the fields carried by a queued ADD_ITEM.
func (q *Queue) UpdateQueuedAddItem(listID, id models.ID, description string, completed bool) bool {
	return q.setItemFields(models.AddItem, listID, id, description, completed)
}

// UpdateQueuedUpdateItem rewrites the fields carried by a queued UPDATE_ITEM.
func (q *Queue) UpdateQueuedUpdateItem(listID, id models.ID, description string, completed bool) bool {
	return q.setItemFields(models.UpdateItem, listID, id, description, completed)
}

// RemoveQueuedAddItem drops a queued ADD_ITEM.
func (q *Queue) RemoveQueuedAddItem(listID, id models.ID) bool {
	return q.remove(matchItem(models.AddItem, listID, id)) > 0
}

// RemoveQueuedUpdateItem drops a queued UPDATE_ITEM.
func (q *Queue) RemoveQueuedUpdateItem(listID, id models.ID) bool {
	return q.remove(matchItem(models.UpdateItem, listID, id)) > 0
}

// RemoveQueuedDeleteItem drops a queued DELETE_ITEM.
func (q *Queue) RemoveQueuedDeleteItem(listID, id models.ID) bool {
	return q.remove(matchItem(models.DeleteItem, listID, id)) > 0
}

// PurgeItem drops every queued operation on the item.
func (q *Queue) PurgeItem(listID, id models.ID) int {
	return q.remove(func(op models.PendingOperation) bool {
		p, ok := op.ItemPayload()
		return ok && p.ListID == listID && p.ID == id
	})
}

// ── user intents ─────────────────────────────────────────────────────────────

// QueueListCreate records the creation of a list minted offline.
func (q *Queue) QueueListCreate(id models.ID, name string) {
	q.Enqueue(models.AddList, models.ListPayload{ID: id, Name: name})
}

// QueueListRename records a rename, folding it into a queued ADD_LIST or
// UPDATE_LIST when there is one.
func (q *Queue) QueueListRename(id models.ID, name string) {
	if q.UpdateQueuedAddListName(id, name) || q.UpdateQueuedUpdateList(id, name) {
		return
	}
	q.Enqueue(models.UpdateList, models.ListPayload{ID: id, Name: name})
}

// QueueListDelete records the deletion of a list. All queued work under the
// list is dropped. A DELETE_LIST is enqueued only when the list may exist on
// the server, that is when no ADD_LIST was still queued for it and its id is
// not temporary.
func (q *Queue) QueueListDelete(id models.ID) {
	if _, ok := q.FindList(models.DeleteList, id); ok {
		return
	}
	_, hadAdd := q.FindList(models.AddList, id)
	q.ClearForList(id)
	if hadAdd || id.IsTemporary() {
		return
	}
	q.Enqueue(models.DeleteList, models.ListPayload{ID: id})
}

// QueueItemCreate records the creation of an item minted offline.
func (q *Queue) QueueItemCreate(listID, id models.ID, description string, completed bool) {
	q.Enqueue(models.AddItem, models.ItemPayload{
		ListID:      listID,
		ID:          id,
		Description: description,
		Completed:   completed,
	})
}

// QueueItemEdit records new field values for an item. The change folds into
// a queued ADD_ITEM or UPDATE_ITEM; a queued DELETE_ITEM is replaced by an
// UPDATE_ITEM.
func (q *Queue) QueueItemEdit(listID, id models.ID, description string, completed bool) {
	if q.UpdateQueuedAddItem(listID, id, description, completed) ||
		q.UpdateQueuedUpdateItem(listID, id, description, completed) {
		return
	}
	q.RemoveQueuedDeleteItem(listID, id)
	q.Enqueue(models.UpdateItem, models.ItemPayload{
		ListID:      listID,
		ID:          id,
		Description: description,
		Completed:   completed,
	})
}

// QueueItemDelete records the deletion of an item. An item whose ADD_ITEM
// is still queued, or whose id is temporary, never reached the server: its
// queued work is dropped and nothing is enqueued.
func (q *Queue) QueueItemDelete(listID, id models.ID) {
	if _, ok := q.FindItem(models.DeleteItem, listID, id); ok {
		return
	}
	hadAdd := q.RemoveQueuedAddItem(listID, id)
	q.RemoveQueuedUpdateItem(listID, id)
	if hadAdd || id.IsTemporary() {
		return
	}
	q.Enqueue(models.DeleteItem, models.ItemPayload{ListID: listID, ID: id})
}

// MaxTemporaryID returns the largest temporary id referenced by the queue.
func (q *Queue) MaxTemporaryID() models.ID {
	var maxID models.ID
	for _, op := range q.ops {
		for _, id := range []models.ID{op.ListID(), op.EntityID()} {
			if id.IsTemporary() && id > maxID {
				maxID = id
			}
		}
	}
	return maxID
}

func (q *Queue) setListName(kind models.OperationKind, id models.ID, name string) bool {
	i := q.index(matchList(kind, id))
	if i < 0 {
		return false
	}
	q.ops[i].Payload = models.ListPayload{ID: id, Name: name}
	return true
}

func (q *Queue) setItemFields(kind models.OperationKind, listID, id models.ID, description string, completed bool) bool {
	i := q.index(matchItem(kind, listID, id))
	if i < 0 {
		return false
	}
	q.ops[i].Payload = models.ItemPayload{
		ListID:      listID,
		ID:          id,
		Description: description,
		Completed:   completed,
	}
	return true
}

func (q *Queue) index(match func(models.PendingOperation) bool) int {
	return slices.IndexFunc(q.ops, match)
}

func (q *Queue) filter(match func(models.PendingOperation) bool) []models.PendingOperation {
	out := make([]models.PendingOperation, 0, len(q.ops))
	for _, op := range q.ops {
		if match(op) {
			out = append(out, op)
		}
	}
	return out
}

func (q *Queue) remove(match func(models.PendingOperation) bool) int {
	before := len(q.ops)
	q.ops = slices.DeleteFunc(q.ops, match)
	return before - len(q.ops)
}

func matchList(kind models.OperationKind, id models.ID) func(models.PendingOperation) bool {
	return func(op models.PendingOperation) bool {
		if op.Kind != kind {
			return false
		}
		p, ok := op.ListPayload()
		return ok && p.ID == id
	}
}

func matchItem(kind models.OperationKind, listID, id models.ID) func(models.PendingOperation) bool {
	return func(op models.PendingOperation) bool {
		if op.Kind != kind {
			return false
		}
		p, ok := op.ItemPayload()
		return ok && p.ListID == listID && p.ID == id
	}
}
