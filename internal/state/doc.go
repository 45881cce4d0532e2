// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client-side synchronization state: the entity
// store of lists and items, the pending operation queue with its coalescing
// rules, the snapshot reconciliation algorithm, and the identifier
// conciliation step that rewrites temporary ids once the server assigns
// permanent ones.
//
// [EntityStore] and [Queue] are plain values with no locking of their own.
// [Session] owns one of each, serializes every logical step behind a mutex,
// and persists the result.
package state
