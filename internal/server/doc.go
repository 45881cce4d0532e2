// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server and the background workers of the
// todo server until a stop signal arrives, then shuts both down.
package server
