// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSchedulerBusy is returned when a bulk completion cannot be queued
	// right now.
	ErrSchedulerBusy = errors.New("completion scheduler is busy")
)
