// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

// failureClass is the reaction of the client to a failed server call.
type failureClass int

const (
	// failureTransient keeps the operation queued for the next drain.
	failureTransient failureClass = iota
	// failureNotFound means the target is gone on the server; the operation
	// is resolved locally.
	failureNotFound
	// failureInvalidResponse means the server answered 2xx with a body the
	// client cannot use. The operation stays queued.
	failureInvalidResponse
)

// classifyAdapterError translates an adapter error into a failure class.
// Anything that is not a clear 404 or an unusable response is transient:
// network errors, timeouts, 5xx and the other 4xx.
func classifyAdapterError(err error) failureClass {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return failureNotFound
	case errors.Is(err, adapter.ErrInvalidResponse):
		return failureInvalidResponse
	default:
		return failureTransient
	}
}

func (c failureClass) String() string {
	switch c {
	case failureNotFound:
		return "not_found"
	case failureInvalidResponse:
		return "invalid_response"
	default:
		return "transient"
	}
}
