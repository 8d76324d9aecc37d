// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tui provides the full-screen Bubble Tea front-end for athena.
//
// The model shows a header with task counts and the save path, a
// scrollable transcript of the conversation, and a single input line.
// On wide terminals a panel beside the transcript lists the tasks with the
// numbers mark, unmark and delete take; ctrl+t toggles it and ctrl+o hides
// completed tasks.
// Every submitted line goes through session.Session.Handle, so the TUI
// and the line-oriented chat behave identically.
//
// # Usage
//
//	p := tea.NewProgram(tui.New(sess, tui.Options{}), tea.WithAltScreen())
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
