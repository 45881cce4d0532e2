// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the server:
// the resty-based HTTP client, JSON request and response helpers, and id
// generators.
package utils
