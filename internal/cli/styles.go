// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for athena's line-oriented output.
//
// Colors are disabled for non-TTY output and when NO_COLOR or --no-color
// is set; see terminal.go.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// AssistantStyle is used for the "Athena:" prefix on responses
	// Color: Purple (#141)
	AssistantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	// TitleStyle is used for section titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// LabelStyle is used for field labels
	// Width: 20 characters by default (can be overridden inline)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(20)

	// ErrorStyle is used for error messages and failures
	// Color: Red (#196)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// =============================================================================
// HELPER FUNCTIONS FOR COMMON PATTERNS
// =============================================================================

// RenderConditional renders text with style if colors are enabled,
// otherwise returns the text unmodified.
func RenderConditional(style lipgloss.Style, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return style.Render(text)
}

// RenderSeparator renders a horizontal separator line of the given width.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 40
	}
	return RenderConditional(SeparatorStyle, strings.Repeat("─", width))
}

// RenderLabel renders a label padded to the label width.
func RenderLabel(label string) string {
	if !ColorsEnabled() {
		return label + strings.Repeat(" ", max(0, 20-len(label)))
	}
	return LabelStyle.Render(label)
}

// RenderResponse prefixes a response with the assistant name. Continuation
// lines are indented to line up under the first.
func RenderResponse(name, response string) string {
	prefix := name + ": "
	indent := strings.Repeat(" ", len(prefix))
	lines := strings.Split(response, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return RenderConditional(AssistantStyle, prefix) + strings.Join(lines, "\n")
}
