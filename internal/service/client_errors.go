// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client-side service errors.
var (
	// ErrDrainInProgress is returned by ProcessQueue while another drain runs.
	ErrDrainInProgress = errors.New("queue drain already in progress")

	// ErrMalformedOperation marks a queue entry whose payload does not match
	// its kind. The entry is left in place.
	ErrMalformedOperation = errors.New("malformed queued operation")

	// ErrParentNotSynced is reported for an item creation whose list has not
	// reached the server yet.
	ErrParentNotSynced = errors.New("parent list is not synced yet")

	ErrEmptyListName        = errors.New("list name is empty")
	ErrEmptyItemDescription = errors.New("item description is empty")

	// ErrUnknownList and ErrUnknownItem are returned when a user action
	// targets an entity the local store does not hold.
	ErrUnknownList = errors.New("list is not known locally")
	ErrUnknownItem = errors.New("item is not known locally")
)
