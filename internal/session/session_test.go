// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/athena/internal/commands"
	"github.com/jeranaias/athena/internal/storage"
	"github.com/jeranaias/athena/internal/tasks"
)

// failingStore loads an empty list and fails every save until fail is cleared.
type failingStore struct {
	fail  bool
	saves int
}

func (f *failingStore) Load() (*tasks.List, error) { return tasks.NewList(), nil }
func (f *failingStore) Path() string                { return "memory" }
func (f *failingStore) Save(*tasks.List) error {
	f.saves++
	if f.fail {
		return errors.New("disk full")
	}
	return nil
}

func newSession(t *testing.T) (*Session, *storage.Store) {
	t.Helper()
	store := storage.NewStore(t.TempDir(), "athena.txt")
	sess, err := New(store, nil)
	require.NoError(t, err)
	return sess, store
}

// =============================================================================
// HANDLE TESTS
// =============================================================================

func TestHandle_Scenarios(t *testing.T) {
	sess, _ := newSession(t)

	resp := sess.Handle("deadline return book /by 15/10/2024 1400")
	assert.Equal(t,
		commands.MsgAdded+"\n[D][ ] return book (by: Oct 15 2024 02:00PM)\nNow you have 1 task in your list.",
		resp)

	resp = sess.Handle("todo buy milk")
	assert.Contains(t, resp, "[T][ ] buy milk")
	assert.Contains(t, resp, "Now you have 2 tasks in your list.")

	resp = sess.Handle("mark 5")
	assert.Equal(t, "I couldn't find task 5. Now you have 2 tasks in your list.", resp)

	resp = sess.Handle("deadline report")
	assert.Equal(t, commands.MissingTaskDateTime.Message(), resp)

	resp = sess.Handle("blah")
	assert.Equal(t, commands.InvalidCommand.Message(), resp)

	resp = sess.Handle("list")
	assert.Equal(t,
		commands.MsgListHeader+"\n1. [D][ ] return book (by: Oct 15 2024 02:00PM)\n2. [T][ ] buy milk",
		resp)

	assert.True(t, sess.Active())
	assert.Equal(t, 2, sess.Len())
}

func TestHandle_ByeDeactivates(t *testing.T) {
	sess, _ := newSession(t)

	assert.True(t, sess.Active())
	assert.Equal(t, commands.MsgFarewell, sess.Handle("bye"))
	assert.False(t, sess.Active())
}

func TestHandle_PersistsAfterMutation(t *testing.T) {
	sess, store := newSession(t)

	sess.Handle("todo read a book")
	sess.Handle("event party /at 2/12/2024 1800")
	sess.Handle("mark 1")

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "T|1|read a book\nE|0|party|Dec 2 2024 06:00PM\n", string(data))

	// A second session sees the same list.
	again, err := New(store, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
	assert.Equal(t, "[T][X] read a book", again.Tasks()[0].String())
}

func TestHandle_ReadOnlyCommandsDoNotSave(t *testing.T) {
	store := &failingStore{}
	sess, err := New(store, nil)
	require.NoError(t, err)

	sess.Handle("list")
	sess.Handle("find x")
	sess.Handle("delete 1")
	assert.Zero(t, store.saves)

	sess.Handle("todo x")
	assert.Equal(t, 1, store.saves)
}

func TestHandle_SaveErrorReportedAndRetried(t *testing.T) {
	store := &failingStore{fail: true}
	sess, err := New(store, nil)
	require.NoError(t, err)

	resp := sess.Handle("todo buy milk")
	assert.Contains(t, resp, "[T][ ] buy milk")
	assert.True(t, strings.HasSuffix(resp, commands.MsgSaveError+"disk full"), resp)
	assert.Equal(t, 1, sess.Len(), "mutation is kept after a failed save")

	// Still dirty, so the next command tries again.
	store.fail = false
	resp = sess.Handle("list")
	assert.NotContains(t, resp, commands.MsgSaveError)
	assert.Equal(t, 2, store.saves)

	sess.Handle("list")
	assert.Equal(t, 2, store.saves, "clean list is not saved again")
}

// =============================================================================
// STARTUP TESTS
// =============================================================================

func TestNew_LoadFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "athena.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o600))

	sess, err := New(storage.NewStore(dir, "athena.txt"), nil)
	require.Error(t, err)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, storage.ErrPersistence)
}

func TestNew_LogsSessionStart(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sess, err := New(storage.NewStore(t.TempDir(), "athena.txt"), logger)
	require.NoError(t, err)
	sess.Handle("todo x")

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "session="+sess.ID())
	assert.Contains(t, out, "command=todo")
	assert.Contains(t, out, "tasks saved")
}

func TestSession_Accessors(t *testing.T) {
	sess, store := newSession(t)

	assert.NotEmpty(t, sess.ID())
	assert.Equal(t, store.Path(), sess.Path())
	assert.Equal(t, commands.MsgGreeting, sess.Greeting())
	assert.Empty(t, sess.Tasks())
}
