// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/athena/internal/session"
)

// =============================================================================
// TRANSCRIPT
// =============================================================================

type speaker int

const (
	speakerUser speaker = iota
	speakerAssistant
)

// entry is one line of the conversation shown in the viewport.
type entry struct {
	from speaker
	text string
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures the TUI.
type Options struct {
	AssistantName string
	Prompt        string
	Quiet         bool // start without the greeting
}

// Model is the Bubble Tea model for the full-screen front-end.
type Model struct {
	sess *session.Session
	opts Options

	viewport viewport.Model
	input    textinput.Model
	panel    taskPanel

	transcript []entry
	width      int
	height     int
	quitting   bool
}

// Layout: header + viewport (dynamic) + separator + input line + status bar
const (
	headerHeight    = 1
	inputAreaHeight = 2
	statusBarHeight = 1
)

// New creates a model driving sess.
func New(sess *session.Session, opts Options) Model {
	if opts.AssistantName == "" {
		opts.AssistantName = "Athena"
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Placeholder = "todo, deadline, event, list, mark, unmark, delete, find, bye"
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		sess:     sess,
		opts:     opts,
		viewport: vp,
		input:    ti,
		panel:    newTaskPanel(),
		width:    80,
		height:   24,
	}
	if !opts.Quiet {
		m.transcript = append(m.transcript, entry{from: speakerAssistant, text: sess.Greeting()})
	}
	m.layout()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.input.Width = max(10, m.width-len(m.opts.Prompt)-1)
	m.layout()
	return m, nil
}

// layout sizes the viewport and the task panel to the current terminal.
func (m *Model) layout() {
	body := max(1, m.height-headerHeight-inputAreaHeight-statusBarHeight)
	m.panel.SetSize(m.width, body)

	m.viewport.Width = max(1, m.width)
	if m.panel.Shown(m.width) {
		// One extra column for the panel border.
		m.viewport.Width = max(1, m.width-m.panel.width-1)
	}
	m.viewport.Height = body

	m.updateViewport()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "pgup", "ctrl+u":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown", "ctrl+d":
		m.viewport.HalfViewDown()
		return m, nil

	case "home":
		m.viewport.GotoTop()
		return m, nil

	case "end":
		m.viewport.GotoBottom()
		return m, nil

	case "ctrl+t":
		m.panel.visible = !m.panel.visible
		m.layout()
		return m, nil

	case "ctrl+o":
		m.panel.hideDone = !m.panel.hideDone
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the input line to the session and records both sides of the
// exchange. The program quits once the session has ended.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.input.Reset()

	response := m.sess.Handle(text)
	m.transcript = append(m.transcript,
		entry{from: speakerUser, text: text},
		entry{from: speakerAssistant, text: response},
	)
	m.updateViewport()

	if !m.sess.Active() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateViewport re-renders the transcript and keeps the newest exchange
// in view.
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
