// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrQueueFull is returned by [ToggleCompleteWorker.Schedule] when no more
// jobs can be accepted.
var ErrQueueFull = errors.New("toggle complete queue is full")
