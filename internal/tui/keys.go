// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	quit        key.Binding
	add         key.Binding
	edit        key.Binding
	delete      key.Binding
	toggle      key.Binding
	completeAll key.Binding
	resetAll    key.Binding
	sync        key.Binding
	refresh     key.Binding
	copy        key.Binding
	buildInfo   key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:         key.NewBinding(key.WithKeys("a")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("ctrl+d")),
	toggle:      key.NewBinding(key.WithKeys(" ", "x")),
	completeAll: key.NewBinding(key.WithKeys("t")),
	resetAll:    key.NewBinding(key.WithKeys("T")),
	sync:        key.NewBinding(key.WithKeys("s")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	copy:        key.NewBinding(key.WithKeys("c")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
