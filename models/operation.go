// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationKind names the mutation a [PendingOperation] replays against the
// server.
type OperationKind string

const (
	AddList    OperationKind = "ADD_LIST"
	UpdateList OperationKind = "UPDATE_LIST"
	DeleteList OperationKind = "DELETE_LIST"
	AddItem    OperationKind = "ADD_ITEM"
	UpdateItem OperationKind = "UPDATE_ITEM"
	DeleteItem OperationKind = "DELETE_ITEM"
)

// IsListKind reports whether k targets a list.
func (k OperationKind) IsListKind() bool {
	switch k {
	case AddList, UpdateList, DeleteList:
		return true
	}
	return false
}

// IsItemKind reports whether k targets an item.
func (k OperationKind) IsItemKind() bool {
	switch k {
	case AddItem, UpdateItem, DeleteItem:
		return true
	}
	return false
}

// Payload is the sealed set of operation payloads: [ListPayload] and
// [ItemPayload]. Consumers switch on the concrete type.
type Payload interface {
	isPayload()
}

// ListPayload carries the fields of a list operation. Name is ignored for
// DELETE_LIST.
type ListPayload struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`
}

// ItemPayload carries the fields of an item operation. Description and
// Completed are ignored for DELETE_ITEM.
type ItemPayload struct {
	ListID      ID     `json:"list_id"`
	ID          ID     `json:"id"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

func (ListPayload) isPayload() {}
func (ItemPayload) isPayload() {}

// PendingOperation is one entry of the offline queue.
type PendingOperation struct {
	QueueID string
	Kind    OperationKind
	Payload Payload
}

// ListPayload returns the payload as a list payload.
// ok is false if the entry carries an item payload.
func (op PendingOperation) ListPayload() (ListPayload, bool) {
	p, ok := op.Payload.(ListPayload)
	return p, ok
}

// ItemPayload returns the payload as an item payload.
// ok is false if the entry carries a list payload.
func (op PendingOperation) ItemPayload() (ItemPayload, bool) {
	p, ok := op.Payload.(ItemPayload)
	return p, ok
}

// ListID returns the id of the list the operation refers to: the list id
// itself for list operations, the owning list for item operations.
func (op PendingOperation) ListID() ID {
	switch p := op.Payload.(type) {
	case ListPayload:
		return p.ID
	case ItemPayload:
		return p.ListID
	}
	return 0
}

// EntityID returns the id of the entity the operation targets.
func (op PendingOperation) EntityID() ID {
	switch p := op.Payload.(type) {
	case ListPayload:
		return p.ID
	case ItemPayload:
		return p.ID
	}
	return 0
}
