// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaskNotFound is matched by every out-of-range index error from List.
var ErrTaskNotFound = errors.New("task not found")

// IndexError reports a 1-based index outside the current list.
type IndexError struct {
	Index int // Index that was requested
	Count int // Number of tasks at the time of the request
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task %d not found (list has %d)", e.Index, e.Count)
}

// Is makes errors.Is(err, ErrTaskNotFound) true for index errors.
func (e *IndexError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// =============================================================================
// TASK LIST
// =============================================================================

// Match is one search hit together with its position in the list.
type Match struct {
	Index int // 1-based position at the time of the search
	Task  *Task
}

// List is an ordered collection of tasks addressed by 1-based position.
// Positions are not stable: removing a task shifts every later task down.
//
// List is not safe for concurrent use.
type List struct {
	tasks    []*Task
	modified bool
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// NewListFrom creates a list holding the given tasks in order. The list
// starts out clean; loading from disk is not a modification.
func NewListFrom(tasks []*Task) *List {
	l := &List{tasks: make([]*Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends a task.
func (l *List) Add(task *Task) {
	l.tasks = append(l.tasks, task)
	l.modified = true
}

// Get returns the task at the 1-based index.
func (l *List) Get(index int) (*Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	return l.tasks[index-1], nil
}

// Remove deletes and returns the task at the 1-based index.
func (l *List) Remove(index int) (*Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	l.modified = true
	return removed, nil
}

// MarkDone flags the task at the 1-based index as done.
func (l *List) MarkDone(index int) (*Task, error) {
	return l.setDone(index, true)
}

// MarkNotDone clears the done flag of the task at the 1-based index.
func (l *List) MarkNotDone(index int) (*Task, error) {
	return l.setDone(index, false)
}

func (l *List) setDone(index int, done bool) (*Task, error) {
	task, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	task.setDone(done)
	l.modified = true
	return task, nil
}

// Search returns every task whose description contains phrase
// (case-sensitive), in list order.
func (l *List) Search(phrase string) []Match {
	var matches []Match
	for i, task := range l.tasks {
		if strings.Contains(task.description, phrase) {
			matches = append(matches, Match{Index: i + 1, Task: task})
		}
	}
	return matches
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// All returns the tasks in order. The returned slice is a copy.
func (l *List) All() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Modified reports whether the list changed since it was last saved.
func (l *List) Modified() bool {
	return l.modified
}

// MarkSaved clears the dirty flag. Call only after a successful write.
func (l *List) MarkSaved() {
	l.modified = false
}

// String renders one numbered line per task, e.g. "1. [T][ ] buy milk".
func (l *List) String() string {
	var sb strings.Builder
	for i, task := range l.tasks {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, task)
	}
	return sb.String()
}

func (l *List) check(index int) error {
	if index < 1 || index > len(l.tasks) {
		return &IndexError{Index: index, Count: len(l.tasks)}
	}
	return nil
}
