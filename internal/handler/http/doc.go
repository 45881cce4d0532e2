// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST and websocket API of the todo server.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging and response compression are handled here before requests are
// delegated to the service layer.
package http
