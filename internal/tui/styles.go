// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorGrey   = lipgloss.Color("8")
)

var bold = lipgloss.NewStyle().Bold(true)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = bold
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = bold.Foreground(colorRed)
	pendingStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	onlineStyle     = bold.Foreground(colorGreen)
	offlineStyle    = bold.Foreground(colorGrey)
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGrey).
			Padding(1, 2)
)
