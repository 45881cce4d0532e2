// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// State is the persisted client state: the entity store contents and the
// pending operation queue, in queue order.
type State struct {
	Lists []TodoList
	Queue []PendingOperation
}
