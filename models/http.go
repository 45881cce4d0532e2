// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListRequest is the body of POST /todolists and PUT /todolists/{id}.
type ListRequest struct {
	Name string `json:"name"`
}

// ItemRequest is the body of POST /todolists/{id}/todos and
// PUT /todolists/{id}/todos/{itemId}.
type ItemRequest struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ToggleCompleteRequest is the body of PUT /todolists/{id}/toggle-complete-async.
type ToggleCompleteRequest struct {
	Completed bool `json:"completed"`
}

// ListResponse is the server representation of a list. A null or absent
// Todos means the endpoint did not embed items, as opposed to an empty list.
type ListResponse struct {
	ID    ID             `json:"id"`
	Name  string         `json:"name"`
	Todos []ItemResponse `json:"todos"`
}

// ItemResponse is the server representation of an item.
type ItemResponse struct {
	ID          ID     `json:"id"`
	ListID      ID     `json:"list_id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ToTodoList converts a server list into a clean local list. Todos stays nil
// when the response carried no items field.
func (r ListResponse) ToTodoList() TodoList {
	list := TodoList{ID: r.ID, Name: r.Name}
	if r.Todos == nil {
		return list
	}
	list.Todos = make([]TodoItem, 0, len(r.Todos))
	for _, item := range r.Todos {
		it := item.ToTodoItem()
		if it.ListID == 0 {
			it.ListID = r.ID
		}
		list.Todos = append(list.Todos, it)
	}
	return list
}

// ToTodoItem converts a server item into a confirmed local item.
func (r ItemResponse) ToTodoItem() TodoItem {
	return TodoItem{
		ID:          r.ID,
		ListID:      r.ListID,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// NewListResponse builds the wire representation of list.
func NewListResponse(list TodoList) ListResponse {
	resp := ListResponse{ID: list.ID, Name: list.Name, Todos: make([]ItemResponse, 0, len(list.Todos))}
	for _, item := range list.Todos {
		resp.Todos = append(resp.Todos, NewItemResponse(item))
	}
	return resp
}

// NewItemResponse builds the wire representation of item.
func NewItemResponse(item TodoItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		ListID:      item.ListID,
		Description: item.Description,
		Completed:   item.Completed,
	}
}
