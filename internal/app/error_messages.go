// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoTodoKeeper server handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies when the underlying error must not leak to the client.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database is unreachable or
	// the bulk completion queue is full. The client should retry later.
	MsgServiceUnavailable = "service temporarily unavailable"
)
