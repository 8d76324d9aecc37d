// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger shared by the session and the
// front-ends.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/athena/internal/config"
	"github.com/jeranaias/athena/internal/util"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open creates the logger described by cfg. Records are appended to the
// configured log file, which lives next to the task file by default. When
// no file is configured the logger discards everything. The returned close
// function is never nil.
func Open(cfg *config.Config, verbose bool) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, noop, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	path := cfg.LogPath()
	if path == "" {
		return Discard(), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), util.DirPerm); err != nil {
		return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, level), f.Close, nil
}
