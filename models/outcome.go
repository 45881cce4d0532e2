// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome describes what happened to a user mutation or to a queued
// operation replayed by the queue processor.
type Outcome int

const (
	// Applied means the server confirmed the change.
	Applied Outcome = iota
	// QueuedForRetry means the change is kept locally and will be replayed.
	QueuedForRetry
	// TerminalResolved means the server reported the target as gone and the
	// change was dropped locally.
	TerminalResolved
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case QueuedForRetry:
		return "queued_for_retry"
	case TerminalResolved:
		return "terminal_resolved"
	default:
		return "unknown"
	}
}

// OperationResult is the outcome of one replayed queue entry.
type OperationResult struct {
	QueueID string
	Kind    OperationKind
	// ID is the id of the target entity after processing, the server id
	// once a creation is confirmed.
	ID      ID
	Outcome Outcome
	Err     error
}

// DrainReport summarizes one pass of the queue processor.
type DrainReport struct {
	Results []OperationResult
}

// Count returns the number of results with outcome o.
func (r DrainReport) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}
