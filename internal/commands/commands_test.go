// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/athena/internal/tasks"
)

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr), "expected *InputError, got %T: %v", err, err)
	assert.Equal(t, code, inputErr.Code, "error: %v", err)
}

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestSplitKeyword(t *testing.T) {
	tests := []struct {
		input   string
		keyword string
		rest    string
	}{
		{"list", "list", ""},
		{"todo buy milk", "todo", "buy milk"},
		{"todo  buy milk", "todo", " buy milk"},
		{"find\tmilk", "find", "milk"},
		{"", "", ""},
		{" list", "", "list"},
	}

	for _, tc := range tests {
		keyword, rest := SplitKeyword(tc.input)
		if keyword != tc.keyword || rest != tc.rest {
			t.Errorf("SplitKeyword(%q) = %q, %q; want %q, %q", tc.input, keyword, rest, tc.keyword, tc.rest)
		}
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"list", ListCommand{}},
		{"list everything", ListCommand{}},
		{"bye", ShutdownCommand{}},
		{"todo buy milk", TodoCommand{Description: "buy milk"}},
		{"todo   buy milk  ", TodoCommand{Description: "buy milk"}},
		{"todo read a/b testing paper", TodoCommand{Description: "read a"}},
		{"deadline submit report /by 2/12/2024 1800",
			DeadlineCommand{Description: "submit report", By: date(2024, time.December, 2, 18, 0)}},
		{"deadline return book /by 15/10/2024 1400",
			DeadlineCommand{Description: "return book", By: date(2024, time.October, 15, 14, 0)}},
		{"deadline early /by  02/01/2025 900 ",
			DeadlineCommand{Description: "early", By: date(2025, time.January, 2, 9, 0)}},
		{"event concert /at 2/12/2024 1800",
			EventCommand{Description: "concert", At: date(2024, time.December, 2, 18, 0)}},
		{"event midnight /at 1/1/2025 000",
			EventCommand{Description: "midnight", At: date(2025, time.January, 1, 0, 0)}},
		{"mark 2", MarkCommand{Index: 2}},
		{"unmark 2", UnmarkCommand{Index: 2}},
		{"delete 10", DeleteCommand{Index: 10}},
		{"delete -1", DeleteCommand{Index: -1}},
		{"mark 0", MarkCommand{Index: 0}},
		{"find milk", FindCommand{Phrase: "milk"}},
		{"find  milk", FindCommand{Phrase: " milk"}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		code  ErrorCode
	}{
		{"", InvalidCommand},
		{"hello", InvalidCommand},
		{"LIST", InvalidCommand},
		{" list", InvalidCommand},
		{"todo", MissingTaskName},
		{"todo    ", MissingTaskName},
		{"todo /by tomorrow", MissingTaskName},
		{"deadline /by 2/12/2024 1800", MissingTaskName},
		{"deadline report", MissingTaskDateTime},
		{"deadline report /at 2/12/2024 1800", MissingTaskDateTime},
		{"deadline report /by", MissingTaskDateTime},
		{"deadline report /by   ", MissingTaskDateTime},
		{"event party", MissingTaskDateTime},
		{"deadline report /by tomorrow", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024 18:00", InvalidTaskDateTime},
		{"deadline report /by 2/12/24 1800", InvalidTaskDateTime},
		{"deadline report /by 31/2/2024 1800", InvalidTaskDateTime},
		{"deadline report /by 2/13/2024 1800", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024 2400", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024 1860", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024 60", InvalidTaskDateTime},
		{"deadline report /by 2/12/2024  1800", InvalidTaskDateTime},
		{"event party /at 2-12-2024 1800", InvalidTaskDateTime},
		{"mark", MissingTaskNumber},
		{"mark two", MissingTaskNumber},
		{"unmark 1.5", MissingTaskNumber},
		{"delete  2", MissingTaskNumber},
		{"find", MissingSearchPhrase},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cmd, err := Parse(tc.input)
			assert.Nil(t, cmd)
			requireCode(t, err, tc.code)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("29/2/2024 2359")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29, 23, 59), got)

	_, err = ParseDateTime("29/2/2023 2359")
	assert.Error(t, err)
}

func TestInputError_Is(t *testing.T) {
	err := &InputError{Code: TaskNotFound, Err: errors.New("boom")}

	assert.True(t, errors.Is(err, &InputError{Code: TaskNotFound}))
	assert.False(t, errors.Is(err, &InputError{Code: MissingTaskName}))
	assert.Equal(t, "TaskNotFound: boom", err.Error())
	assert.Equal(t, "MissingTaskName", newInputError(MissingTaskName).Error())
}

// =============================================================================
// EXECUTION TESTS
// =============================================================================

func run(t *testing.T, list *tasks.List, input string) (string, error) {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err)
	return Execute(cmd, list)
}

func TestExecute_Todo(t *testing.T) {
	list := tasks.NewList()

	reply, err := run(t, list, "todo   buy milk ")
	require.NoError(t, err)

	assert.Equal(t, MsgAdded+"\n[T][ ] buy milk\nNow you have 1 task in your list.", reply)
	task, err := list.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Description())
	assert.False(t, task.Done())
	assert.True(t, list.Modified())
}

func TestExecute_DeadlineScenario(t *testing.T) {
	list := tasks.NewList()

	reply, err := run(t, list, "deadline return book /by 15/10/2024 1400")
	require.NoError(t, err)

	assert.Contains(t, reply, "[D][ ] return book (by: Oct 15 2024 02:00PM)")
	assert.Contains(t, reply, "Now you have 1 task in your list.")
}

func TestExecute_EventAndCountPlural(t *testing.T) {
	list := tasks.NewList()
	_, err := run(t, list, "todo a")
	require.NoError(t, err)

	reply, err := run(t, list, "event concert /at 2/12/2024 1800")
	require.NoError(t, err)
	assert.Contains(t, reply, "[E][ ] concert (at: Dec 2 2024 06:00PM)")
	assert.Contains(t, reply, "Now you have 2 tasks in your list.")
}

func TestExecute_MarkOutOfRangeLeavesListUnchanged(t *testing.T) {
	list := tasks.NewListFrom([]*tasks.Task{tasks.NewTodo("a"), tasks.NewTodo("b")})

	reply, err := run(t, list, "mark 5")
	assert.Empty(t, reply)
	requireCode(t, err, TaskNotFound)
	assert.ErrorIs(t, err, tasks.ErrTaskNotFound)

	assert.False(t, list.Modified())
	assert.Equal(t, "1. [T][ ] a\n2. [T][ ] b", list.String())
}

func TestExecute_MarkUnmark(t *testing.T) {
	list := tasks.NewListFrom([]*tasks.Task{tasks.NewTodo("a"), tasks.NewTodo("b")})

	reply, err := run(t, list, "mark 2")
	require.NoError(t, err)
	assert.Equal(t, MsgMarked+"\n[T][X] b", reply)

	reply, err = run(t, list, "unmark 2")
	require.NoError(t, err)
	assert.Equal(t, MsgUnmarked+"\n[T][ ] b", reply)
	assert.True(t, list.Modified())
}

func TestExecute_DeleteShiftsIndices(t *testing.T) {
	list := tasks.NewListFrom([]*tasks.Task{tasks.NewTodo("a"), tasks.NewTodo("b"), tasks.NewTodo("c")})

	reply, err := run(t, list, "delete 1")
	require.NoError(t, err)
	assert.Equal(t, MsgDeleted+"\n[T][ ] a\nNow you have 2 tasks in your list.", reply)

	reply, err = run(t, list, "list")
	require.NoError(t, err)
	assert.Equal(t, MsgListHeader+"\n1. [T][ ] b\n2. [T][ ] c", reply)

	_, err = run(t, list, "delete 3")
	requireCode(t, err, TaskNotFound)
}

func TestExecute_Find(t *testing.T) {
	list := tasks.NewListFrom([]*tasks.Task{
		tasks.NewTodo("buy milk"),
		tasks.NewTodo("read book"),
		tasks.NewTodo("milk the cow"),
	})

	reply, err := run(t, list, "find milk")
	require.NoError(t, err)
	assert.Equal(t, MsgFound+"\n1. [T][ ] buy milk\n3. [T][ ] milk the cow", reply)

	reply, err = run(t, list, "find Milk")
	require.NoError(t, err)
	assert.Equal(t, `I couldn't find any tasks matching "Milk".`, reply)
	assert.False(t, list.Modified())
}

func TestExecute_ListAndBye(t *testing.T) {
	list := tasks.NewList()

	reply, err := run(t, list, "list")
	require.NoError(t, err)
	assert.Equal(t, MsgListEmpty, reply)

	cmd, err := Parse("bye")
	require.NoError(t, err)
	assert.True(t, IsShutdown(cmd))
	reply, err = Execute(cmd, list)
	require.NoError(t, err)
	assert.Equal(t, MsgFarewell, reply)
	assert.False(t, list.Modified())
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestErrorMessage(t *testing.T) {
	list := tasks.NewListFrom([]*tasks.Task{tasks.NewTodo("a"), tasks.NewTodo("b")})
	_, err := run(t, list, "delete 7")
	assert.Equal(t, "I couldn't find task 7. Now you have 2 tasks in your list.", ErrorMessage(err))

	_, err = Parse("fly")
	assert.Equal(t, InvalidCommand.Message(), ErrorMessage(err))

	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))
}

func TestRegistry_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"list", "todo", "deadline", "event", "mark", "unmark", "delete", "find", "bye"},
		Builtins().Keywords())

	for _, def := range Builtins().All() {
		_, err := Parse(def.Example)
		assert.NoError(t, err, "example for %s", def.Keyword)
	}
}
