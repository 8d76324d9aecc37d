// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides the task model and the ordered task list.
//
// # Key Types
//
//   - Task: a todo, deadline or event with a done flag
//   - Kind: closed set of task variants (KindTodo, KindDeadline, KindEvent)
//   - List: ordered tasks addressed by 1-based position, with a dirty flag
//   - Match: search hit carrying the task's position
//
// # Usage
//
//	list := tasks.NewList()
//	list.Add(tasks.NewTodo("buy milk"))
//	if _, err := list.MarkDone(1); errors.Is(err, tasks.ErrTaskNotFound) {
//	    // index out of range
//	}
//	fmt.Println(list) // 1. [T][X] buy milk
//
// Every mutation sets the dirty flag reported by Modified; the caller clears
// it with MarkSaved once the list has been written to disk.
package tasks
