// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/athena/internal/tasks"
)

// =============================================================================
// EXECUTION
// =============================================================================

// Execute applies cmd to list and returns the response text. Only the
// index-based commands can fail, with an *InputError of code TaskNotFound;
// the list is unchanged in that case.
func Execute(cmd Command, list *tasks.List) (string, error) {
	switch c := cmd.(type) {
	case ListCommand:
		if list.Len() == 0 {
			return MsgListEmpty, nil
		}
		return MsgListHeader + "\n" + list.String(), nil

	case TodoCommand:
		return addTask(list, tasks.NewTodo(c.Description)), nil

	case DeadlineCommand:
		return addTask(list, tasks.NewDeadline(c.Description, c.By)), nil

	case EventCommand:
		return addTask(list, tasks.NewEvent(c.Description, c.At)), nil

	case MarkCommand:
		task, err := list.MarkDone(c.Index)
		if err != nil {
			return "", notFound(err)
		}
		return MsgMarked + "\n" + task.String(), nil

	case UnmarkCommand:
		task, err := list.MarkNotDone(c.Index)
		if err != nil {
			return "", notFound(err)
		}
		return MsgUnmarked + "\n" + task.String(), nil

	case DeleteCommand:
		task, err := list.Remove(c.Index)
		if err != nil {
			return "", notFound(err)
		}
		return MsgDeleted + "\n" + task.String() + "\n" + CountMessage(list.Len()), nil

	case FindCommand:
		matches := list.Search(c.Phrase)
		if len(matches) == 0 {
			return fmt.Sprintf(MsgNotFound, c.Phrase), nil
		}
		var sb strings.Builder
		sb.WriteString(MsgFound)
		for _, m := range matches {
			fmt.Fprintf(&sb, "\n%d. %s", m.Index, m.Task)
		}
		return sb.String(), nil

	case ShutdownCommand:
		return MsgFarewell, nil

	default:
		return "", fmt.Errorf("unhandled command %T", cmd)
	}
}

func addTask(list *tasks.List, task *tasks.Task) string {
	list.Add(task)
	return MsgAdded + "\n" + task.String() + "\n" + CountMessage(list.Len())
}

func notFound(err error) error {
	if errors.Is(err, tasks.ErrTaskNotFound) {
		return &InputError{Code: TaskNotFound, Err: err}
	}
	return err
}
