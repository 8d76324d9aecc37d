// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides the task model and the ordered task list.
package tasks

import (
	"fmt"
	"time"
)

// =============================================================================
// TASK KIND
// =============================================================================

// Kind identifies which of the three task variants a Task is.
type Kind int

const (
	// KindTodo is a plain task with no date.
	KindTodo Kind = iota

	// KindDeadline is a task that must be done by a date-time.
	KindDeadline

	// KindEvent is a task that happens at a date-time.
	KindEvent
)

// String returns the lowercase command keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Icon returns the single-letter marker used in listings and records.
func (k Kind) Icon() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// KindFromIcon is the inverse of Kind.Icon.
func KindFromIcon(icon string) (Kind, bool) {
	switch icon {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// DisplayLayout renders task date-times in listings and in the save file
// (e.g. "Dec 2 2024 06:00PM"). It must stay stable: saved records depend on it.
const DisplayLayout = "Jan 2 2006 03:04PM"

// =============================================================================
// TASK
// =============================================================================

// Task is a single tracked item. Kind, description and date are fixed at
// construction; only the done flag changes afterwards.
type Task struct {
	kind        Kind
	description string
	when        time.Time
	done        bool
}

// NewTodo creates a todo task.
func NewTodo(description string) *Task {
	return &Task{kind: KindTodo, description: description}
}

// NewDeadline creates a task due by the given date-time.
func NewDeadline(description string, due time.Time) *Task {
	return &Task{kind: KindDeadline, description: description, when: wallClock(due)}
}

// NewEvent creates a task taking place at the given date-time.
func NewEvent(description string, at time.Time) *Task {
	return &Task{kind: KindEvent, description: description, when: wallClock(at)}
}

// wallClock keeps the clock reading and drops the zone, so a date entered as
// 14:00 stays 14:00 regardless of the host's DST rules.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Kind returns the task variant.
func (t *Task) Kind() Kind { return t.kind }

// Description returns the task text.
func (t *Task) Description() string { return t.description }

// When returns the due date of a deadline or the date of an event.
// The zero time is returned for todos.
func (t *Task) When() time.Time { return t.when }

// Done reports whether the task has been marked as done.
func (t *Task) Done() bool { return t.done }

// Icon returns the single-letter kind marker.
func (t *Task) Icon() string { return t.kind.Icon() }

// setDone is unexported so that only List mutations (which track the
// dirty flag) can flip it.
func (t *Task) setDone(done bool) { t.done = done }

// String renders the task for display, e.g. "[D][X] submit report (by: Dec 2 2024 06:00PM)".
func (t *Task) String() string {
	status := " "
	if t.done {
		status = "X"
	}
	base := fmt.Sprintf("[%s][%s] %s", t.Icon(), status, t.description)

	switch t.kind {
	case KindDeadline:
		return base + fmt.Sprintf(" (by: %s)", t.when.Format(DisplayLayout))
	case KindEvent:
		return base + fmt.Sprintf(" (at: %s)", t.when.Format(DisplayLayout))
	case KindTodo:
		return base
	default:
		return base
	}
}

// Restore rebuilds a task from persisted fields, including its done flag.
// Used by the storage codec; commands create tasks through the New* constructors.
func Restore(kind Kind, description string, when time.Time, done bool) (*Task, error) {
	if description == "" {
		return nil, fmt.Errorf("empty description")
	}

	var t *Task
	switch kind {
	case KindTodo:
		t = NewTodo(description)
	case KindDeadline:
		t = NewDeadline(description, when)
	case KindEvent:
		t = NewEvent(description, when)
	default:
		return nil, fmt.Errorf("unknown task kind %d", int(kind))
	}
	t.done = done
	return t, nil
}
