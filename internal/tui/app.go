// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	pageLists = "lists"
	pageItems = "items"

	badgeRefreshInterval = time.Second
)

// inputCapturer is implemented by pages that can be typing text. While a
// page captures input, global hotkeys other than ctrl+c are passed through.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return tickBadge()
	}
	return tea.Batch(page.Init(), tickBadge())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.String() == "esc" || key.String() == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.String() == "v" && r.current == pageLists && !r.typing() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = nav.Page

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, next.Init()
	}

	var tick tea.Cmd
	if _, ok := msg.(tickMsg); ok {
		tick = tickBadge()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, tick
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, tea.Batch(cmd, tick)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("TUI", "", "")
	}
	return page.View()
}

func (r RootModel) typing() bool {
	c, ok := r.pages[r.current].(inputCapturer)
	return ok && c.capturesInput()
}

func tickBadge() tea.Cmd {
	return tea.Tick(badgeRefreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}
