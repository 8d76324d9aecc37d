// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "fmt"

// =============================================================================
// ERROR CODES
// =============================================================================

// ErrorCode classifies a failed command.
type ErrorCode int

const (
	// InvalidCommand means the first word is not a known keyword.
	InvalidCommand ErrorCode = iota + 1
	// MissingTaskName means no description precedes the first "/".
	MissingTaskName
	// MissingTaskDateTime means the /by or /at marker or its value is absent.
	MissingTaskDateTime
	// InvalidTaskDateTime means the date-time does not match InputLayout.
	InvalidTaskDateTime
	// MissingTaskNumber means the argument is not an integer.
	MissingTaskNumber
	// MissingSearchPhrase means find was given nothing to look for.
	MissingSearchPhrase
	// TaskNotFound means the index is outside the current list.
	TaskNotFound
	// PersistenceError means the save file could not be read or written.
	PersistenceError
)

// String returns the code name, e.g. "MissingTaskName".
func (c ErrorCode) String() string {
	switch c {
	case InvalidCommand:
		return "InvalidCommand"
	case MissingTaskName:
		return "MissingTaskName"
	case MissingTaskDateTime:
		return "MissingTaskDateTime"
	case InvalidTaskDateTime:
		return "InvalidTaskDateTime"
	case MissingTaskNumber:
		return "MissingTaskNumber"
	case MissingSearchPhrase:
		return "MissingSearchPhrase"
	case TaskNotFound:
		return "TaskNotFound"
	case PersistenceError:
		return "PersistenceError"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Message returns the text shown to the user for the code.
func (c ErrorCode) Message() string {
	switch c {
	case InvalidCommand:
		return "Sorry, I don't know that command."
	case MissingTaskName:
		return "Please give the task a name."
	case MissingTaskDateTime:
		return "Please give the task a date and time, e.g. /by 2/12/2024 1800."
	case InvalidTaskDateTime:
		return "I couldn't read that date. Please use day/month/year time, e.g. 2/12/2024 1800."
	case MissingTaskNumber:
		return "Please give me a task number."
	case MissingSearchPhrase:
		return "Please tell me what to search for."
	case TaskNotFound:
		return "I couldn't find a task with that number."
	case PersistenceError:
		return "I couldn't read or write the save file."
	default:
		return "Something went wrong."
	}
}

// =============================================================================
// INPUT ERROR
// =============================================================================

// InputError is returned by Parse and Execute. It never leaves the task list
// partially modified.
type InputError struct {
	Code ErrorCode
	Err  error // Underlying cause, if any
}

func newInputError(code ErrorCode) *InputError {
	return &InputError{Code: code}
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code.String()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is matches another *InputError with the same code, so callers can write
// errors.Is(err, &InputError{Code: TaskNotFound}).
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
