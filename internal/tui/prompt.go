// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptNewList
	promptRenameList
	promptNewItem
	promptEditItem
)

func (k promptKind) label() string {
	switch k {
	case promptNewList:
		return "Новый список"
	case promptRenameList:
		return "Название списка"
	case promptNewItem:
		return "Новая задача"
	case promptEditItem:
		return "Описание задачи"
	default:
		return ""
	}
}

func newPromptInput(value string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = "..."
	in.CharLimit = limit
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return in
}
