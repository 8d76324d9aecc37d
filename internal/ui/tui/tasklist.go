// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/athena/internal/tasks"
	"github.com/jeranaias/athena/internal/ui/styles"
	"github.com/jeranaias/athena/internal/util"
)

// =============================================================================
// TASK PANEL
// =============================================================================

// The panel only appears when the terminal is wide enough to keep the
// transcript readable beside it.
const (
	panelMinTermWidth = 90
	panelMaxWidth     = 36
)

// taskPanel renders the current task list beside the transcript.
type taskPanel struct {
	width  int
	height int

	visible  bool
	hideDone bool
}

func newTaskPanel() taskPanel {
	return taskPanel{visible: true}
}

// SetSize sets the panel dimensions from the terminal size.
func (p *taskPanel) SetSize(termWidth, height int) {
	p.width = min(panelMaxWidth, termWidth/3)
	p.height = height
}

// Shown reports whether the panel takes up screen space at termWidth.
func (p taskPanel) Shown(termWidth int) bool {
	return p.visible && termWidth >= panelMinTermWidth
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the panel for list. Task numbers are the list positions
// that mark, unmark and delete expect, even when done tasks are hidden.
func (p taskPanel) View(list []*tasks.Task) string {
	inner := max(1, p.width-2)

	var lines []string
	lines = append(lines, styles.PanelTitleStyle.Render("Tasks"))

	open := 0
	var rows [][]string
	for i, t := range list {
		if !t.Done() {
			open++
		}
		if p.hideDone && t.Done() {
			continue
		}
		rows = append(rows, p.renderTask(i+1, t, inner))
	}

	// Title and footer take two lines each.
	room := max(0, p.height-4)
	shown := 0
	for _, row := range rows {
		if len(lines)-1+len(row) > room {
			break
		}
		lines = append(lines, row...)
		shown++
	}

	switch {
	case len(list) == 0:
		lines = append(lines, styles.MutedStyle.Italic(true).Render("No tasks yet"))
	case len(rows) == 0:
		lines = append(lines, styles.MutedStyle.Italic(true).Render("No open tasks"))
	case shown < len(rows):
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("… %d more", len(rows)-shown)))
	}

	lines = append(lines, "", p.renderFooter(open, len(list)-open))

	return styles.PanelStyle.
		Width(p.width).
		Height(max(1, p.height)).
		MaxHeight(max(1, p.height)).
		Render(strings.Join(lines, "\n"))
}

// renderTask renders one task as a numbered row, with its date on a second
// line for deadlines and events.
func (p taskPanel) renderTask(number int, t *tasks.Task, width int) []string {
	check := "[ ]"
	desc := t.Description()
	if t.Done() {
		check = styles.DoneStyle.Render("[X]")
	}

	prefix := fmt.Sprintf("%2d. %s %s ", number, styles.KindBadge(t.Kind()), check)
	room := max(1, width-lipgloss.Width(prefix))
	text := util.TruncateWidth(desc, room)
	if t.Done() {
		text = styles.MutedStyle.Strikethrough(true).Render(text)
	}

	row := []string{prefix + text}

	var label string
	switch t.Kind() {
	case tasks.KindDeadline:
		label = "by "
	case tasks.KindEvent:
		label = "at "
	case tasks.KindTodo:
		return row
	}
	when := util.TruncateWidth(label+t.When().Format(tasks.DisplayLayout), max(1, width-4))
	return append(row, "    "+styles.MutedStyle.Render(when))
}

func (p taskPanel) renderFooter(open, done int) string {
	summary := fmt.Sprintf("%d open · %d done", open, done)
	if p.hideDone {
		summary += " (hidden)"
	}
	return styles.MutedStyle.Render(util.TruncateWidth(summary, max(1, p.width-2)))
}
