// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/athena/internal/tasks"
)

// =============================================================================
// LAYOUT STYLES
// =============================================================================

var (
	// HeaderStyle is the top bar with the title and task counts
	HeaderStyle = lipgloss.NewStyle().
			Background(SurfaceDim).
			Foreground(TextPrimary).
			Padding(0, 1)

	// TitleStyle is the assistant name inside the header
	TitleStyle = lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true)

	// StatusBarStyle is the bottom bar with key help
	StatusBarStyle = lipgloss.NewStyle().
			Background(SurfaceDim).
			Foreground(TextMuted).
			Padding(0, 1)

	// SeparatorStyle draws the rule above the input line
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(Overlay)

	// PanelStyle frames the task panel to the right of the transcript
	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Overlay).
			PaddingLeft(1)

	// PanelTitleStyle is the task panel heading
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)
)

// =============================================================================
// TRANSCRIPT STYLES
// =============================================================================

var (
	// UserStyle echoes what the user typed
	UserStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	// AssistantNameStyle prefixes each response
	AssistantNameStyle = lipgloss.NewStyle().
				Foreground(Purple).
				Bold(true)

	// ResponseStyle is the body of a response
	ResponseStyle = lipgloss.NewStyle().
			Foreground(TextPrimary)

	// ErrorStyle highlights save failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true)

	// MutedStyle is for counts and hints
	MutedStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)

	// DoneStyle marks completed-task counts
	DoneStyle = lipgloss.NewStyle().
			Foreground(Emerald)
)

// KindColor returns the badge color for a task kind.
func KindColor(kind tasks.Kind) lipgloss.AdaptiveColor {
	switch kind {
	case tasks.KindTodo:
		return Cyan
	case tasks.KindDeadline:
		return Amber
	case tasks.KindEvent:
		return Rose
	default:
		return TextMuted
	}
}

// KindBadge renders the one-letter kind marker in its color, e.g. "D".
func KindBadge(kind tasks.Kind) string {
	return lipgloss.NewStyle().Foreground(KindColor(kind)).Bold(true).Render(kind.Icon())
}
