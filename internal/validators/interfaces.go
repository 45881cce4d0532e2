// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the todo server: list
// names, item descriptions and entity ids.
//
// A Validator is injected into the service layer, which calls Validate
// before anything reaches storage. The optional field names restrict the
// check to part of the value, e.g. only the name of a list on rename.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
