// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/athena/internal/commands"
	"github.com/jeranaias/athena/internal/tasks"
	"github.com/jeranaias/athena/internal/ui/styles"
	"github.com/jeranaias/athena/internal/util"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.viewport.View()
	if m.panel.Shown(m.width) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panel.View(m.sess.Tasks()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderInput(),
		m.renderStatusBar(),
	)
}

// =============================================================================
// HEADER
// =============================================================================

// taskCounts returns the total, done, and per-kind counts.
func taskCounts(list []*tasks.Task) (total, done int, byKind map[tasks.Kind]int) {
	byKind = make(map[tasks.Kind]int)
	for _, t := range list {
		if t.Done() {
			done++
		}
		byKind[t.Kind()]++
	}
	return len(list), done, byKind
}

func (m Model) renderHeader() string {
	total, done, byKind := taskCounts(m.sess.Tasks())

	title := styles.TitleStyle.Render(m.opts.AssistantName)

	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	counts := fmt.Sprintf("%d %s", total, noun)
	if done > 0 {
		counts += " · " + styles.DoneStyle.Render(fmt.Sprintf("%d done", done))
	}

	var badges []string
	for _, kind := range []tasks.Kind{tasks.KindTodo, tasks.KindDeadline, tasks.KindEvent} {
		if n := byKind[kind]; n > 0 {
			badges = append(badges, fmt.Sprintf("%s%d", styles.KindBadge(kind), n))
		}
	}
	if len(badges) > 0 {
		counts += "  " + strings.Join(badges, " ")
	}

	left := title + "  " + counts

	// The save path takes whatever room is left, truncated from the right.
	room := m.width - lipgloss.Width(left) - 4
	path := ""
	if room > 3 {
		path = styles.MutedStyle.Render(util.TruncateWidth(m.sess.Path(), room))
	}

	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(path)-2)
	line := left + strings.Repeat(" ", gap) + path

	return styles.HeaderStyle.Width(m.width).MaxWidth(m.width).Render(line)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func (m Model) renderTranscript() string {
	width := max(20, m.viewport.Width-2)
	name := m.opts.AssistantName + ": "
	indent := strings.Repeat(" ", lipgloss.Width(name))

	var sb strings.Builder
	for i, e := range m.transcript {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch e.from {
		case speakerUser:
			sb.WriteString(styles.UserStyle.Width(width).Render(m.opts.Prompt + e.text))

		case speakerAssistant:
			body := styles.ResponseStyle.Width(width - len(indent)).Render(renderResponse(e.text))
			lines := strings.Split(body, "\n")
			for j := range lines {
				if j == 0 {
					lines[j] = styles.AssistantNameStyle.Render(name) + lines[j]
				} else {
					lines[j] = indent + lines[j]
				}
			}
			sb.WriteString(strings.Join(lines, "\n"))
		}
	}
	return sb.String()
}

// renderResponse highlights the save-failure suffix a session appends.
func renderResponse(text string) string {
	if i := strings.Index(text, commands.MsgSaveError); i >= 0 {
		return text[:i] + styles.ErrorStyle.Render(text[i:])
	}
	return text
}

// =============================================================================
// INPUT AND STATUS BAR
// =============================================================================

func (m Model) renderInput() string {
	sep := styles.SeparatorStyle.Render(strings.Repeat("─", max(1, m.width)))
	return sep + "\n" + m.input.View()
}

func (m Model) renderStatusBar() string {
	help := "enter send · pgup/pgdn scroll · ctrl+t tasks · ctrl+o hide done · esc quit"
	return styles.StatusBarStyle.Width(m.width).MaxWidth(m.width).Render(util.TruncateWidth(help, max(1, m.width-2)))
}
