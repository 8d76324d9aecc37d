// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "time"

// =============================================================================
// COMMAND VARIANTS
// =============================================================================

// Command is a parsed, validated instruction. The set of variants is closed:
// only types in this file implement it, and Execute switches over all of them.
type Command interface {
	// Keyword returns the word that selects this command, e.g. "deadline".
	Keyword() string

	command()
}

// ListCommand shows every task.
type ListCommand struct{}

// TodoCommand adds a todo.
type TodoCommand struct {
	Description string
}

// DeadlineCommand adds a task due by a date-time.
type DeadlineCommand struct {
	Description string
	By          time.Time
}

// EventCommand adds a task happening at a date-time.
type EventCommand struct {
	Description string
	At          time.Time
}

// MarkCommand marks the task at Index (1-based) as done.
type MarkCommand struct {
	Index int
}

// UnmarkCommand marks the task at Index (1-based) as not done.
type UnmarkCommand struct {
	Index int
}

// DeleteCommand removes the task at Index (1-based).
type DeleteCommand struct {
	Index int
}

// FindCommand lists tasks whose description contains Phrase.
type FindCommand struct {
	Phrase string
}

// ShutdownCommand ends the session.
type ShutdownCommand struct{}

func (ListCommand) Keyword() string     { return KeywordList }
func (TodoCommand) Keyword() string     { return KeywordTodo }
func (DeadlineCommand) Keyword() string { return KeywordDeadline }
func (EventCommand) Keyword() string    { return KeywordEvent }
func (MarkCommand) Keyword() string     { return KeywordMark }
func (UnmarkCommand) Keyword() string   { return KeywordUnmark }
func (DeleteCommand) Keyword() string   { return KeywordDelete }
func (FindCommand) Keyword() string     { return KeywordFind }
func (ShutdownCommand) Keyword() string { return KeywordBye }

func (ListCommand) command()     {}
func (TodoCommand) command()     {}
func (DeadlineCommand) command() {}
func (EventCommand) command()    {}
func (MarkCommand) command()     {}
func (UnmarkCommand) command()   {}
func (DeleteCommand) command()   {}
func (FindCommand) command()     {}
func (ShutdownCommand) command() {}

// IsShutdown reports whether cmd ends the session.
func IsShutdown(cmd Command) bool {
	_, ok := cmd.(ShutdownCommand)
	return ok
}
