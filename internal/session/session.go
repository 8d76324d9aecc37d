// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/athena/internal/commands"
	"github.com/jeranaias/athena/internal/tasks"
)

// =============================================================================
// STORE
// =============================================================================

// Store persists the task list. *storage.Store is the production
// implementation.
type Store interface {
	Load() (*tasks.List, error)
	Save(list *tasks.List) error
	Path() string
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns the task list for one run of the assistant and turns each
// line of user input into a response, saving the list whenever a command
// changed it.
type Session struct {
	id        string
	startTime time.Time

	list   *tasks.List
	store  Store
	logger *slog.Logger
	active bool
}

// New loads the task list from store. A load failure is returned as is; the
// caller must not start the session, so an unreadable file is never
// overwritten.
func New(store Store, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.NewString()
	logger = logger.With("session", id)

	list, err := store.Load()
	if err != nil {
		logger.Error("failed to load tasks", "path", store.Path(), "error", err)
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	logger.Info("session started", "path", store.Path(), "tasks", list.Len())

	return &Session{
		id:        id,
		startTime: time.Now(),
		list:      list,
		store:     store,
		logger:    logger,
		active:    true,
	}, nil
}

// Handle processes one line of input and returns the text to show the user.
// It never fails: parse and execution errors become explanatory messages.
func (s *Session) Handle(input string) string {
	cmd, err := commands.Parse(input)
	if err != nil {
		s.logger.Debug("rejected input", "error", err)
		return commands.ErrorMessage(err)
	}

	response, err := commands.Execute(cmd, s.list)
	if err != nil {
		s.logger.Debug("command failed", "command", cmd.Keyword(), "error", err)
		return commands.ErrorMessage(err)
	}
	s.logger.Debug("command executed", "command", cmd.Keyword(), "tasks", s.list.Len())

	if commands.IsShutdown(cmd) {
		s.active = false
		s.logger.Info("session ended", "duration", time.Since(s.startTime).Round(time.Second))
	}

	if err := s.persist(); err != nil {
		response += "\n" + commands.MsgSaveError + err.Error()
	}
	return response
}

// persist writes the list if it is dirty. The dirty flag is only cleared
// after a successful write, so a failed save is retried after the next
// command.
func (s *Session) persist() error {
	if !s.list.Modified() {
		return nil
	}
	if err := s.store.Save(s.list); err != nil {
		s.logger.Error("failed to save tasks", "path", s.store.Path(), "error", err)
		return err
	}
	s.list.MarkSaved()
	s.logger.Debug("tasks saved", "path", s.store.Path(), "tasks", s.list.Len())
	return nil
}

// Active reports whether the session still accepts input. It turns false
// once a bye command has been handled.
func (s *Session) Active() bool {
	return s.active
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string {
	return s.id
}

// Tasks returns a snapshot of the current tasks.
func (s *Session) Tasks() []*tasks.Task {
	return s.list.All()
}

// Len returns the number of tasks.
func (s *Session) Len() int {
	return s.list.Len()
}

// Path returns where the list is saved.
func (s *Session) Path() string {
	return s.store.Path()
}

// Greeting returns the opening line front-ends show before reading input.
func (s *Session) Greeting() string {
	return commands.MsgGreeting
}
