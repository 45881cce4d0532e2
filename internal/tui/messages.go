// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// NavigateTo switches the root model to Page. A non-nil Payload is
// delivered to the new page as the first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// openListMsg is the payload of a navigation to the items page.
type openListMsg struct {
	listID models.ID
}

// stateChangedMsg is sent after every local state mutation.
type stateChangedMsg struct{}

// tickMsg refreshes the connectivity badge.
type tickMsg struct{}

type actionDoneMsg struct {
	action  string
	outcome models.Outcome
	err     error
}

type syncDoneMsg struct {
	report models.DrainReport
	err    error
}

type refreshDoneMsg struct {
	err error
}

type listEventMsg struct {
	event models.ListEvent
}
