// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidID is returned when a path parameter is not a positive integer.
var ErrInvalidID = errors.New("invalid id in path")
