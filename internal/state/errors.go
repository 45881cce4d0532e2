// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "errors"

// ErrPersistState is returned when the in-memory state was updated but could
// not be written to the local database.
var ErrPersistState = errors.New("failed to persist local state")
