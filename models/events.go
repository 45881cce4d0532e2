// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// List event names pushed over the websocket channel.
const (
	EventToggleCompleteDone  = "toggle_complete_done"
	EventToggleCompleteError = "toggle_complete_error"
)

// ListEvent is a server push notification scoped to one list.
type ListEvent struct {
	Event  string `json:"event"`
	ListID ID     `json:"list_id"`
	Error  string `json:"error,omitempty"`
}
