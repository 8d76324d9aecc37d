// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"

	"github.com/jeranaias/athena/internal/tasks"
)

// Response text. Kept together so front-ends render the same wording.
const (
	MsgGreeting   = "Greetings! My name is Athena. What can I help you with?"
	MsgFarewell   = "Goodbye! Your tasks are safe with me. See you soon."
	MsgListHeader = "Here's the current list of tasks:"
	MsgListEmpty  = "Your task list is empty. Add one with todo, deadline or event."
	MsgAdded      = "Okay, I've added this task to your list."
	MsgMarked     = "Nice! I've marked this task as done:"
	MsgUnmarked   = "Okay, I've marked this task as not done yet:"
	MsgDeleted    = "Noted. I've removed this task:"
	MsgFound      = "Here are the matching tasks in your list:"
	MsgNotFound   = "I couldn't find any tasks matching %q."
	MsgSaveError  = "I encountered a problem saving to disk: "
)

// CountMessage reports the list size, e.g. "Now you have 1 task in your list."
func CountMessage(n int) string {
	if n == 1 {
		return "Now you have 1 task in your list."
	}
	return fmt.Sprintf("Now you have %d tasks in your list.", n)
}

// ErrorMessage renders a Parse or Execute error for the user.
func ErrorMessage(err error) string {
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		return err.Error()
	}

	if inputErr.Code == TaskNotFound {
		var idxErr *tasks.IndexError
		if errors.As(err, &idxErr) {
			return fmt.Sprintf("I couldn't find task %d. %s", idxErr.Index, CountMessage(idxErr.Count))
		}
	}
	return inputErr.Code.Message()
}
