// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator mints queue entry ids. UUIDv7 keeps them sortable by
// creation time.
type UUIDGenerator struct {
	fallback func() string
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{fallback: uuid.NewString}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	// the v7 clock sequence is exhausted, a v4 is still unique
	return g.fallback()
}

// NewTraceID returns a value for the X-Trace-ID header.
func NewTraceID() string {
	return uuid.NewString()
}
