// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/jeranaias/athena/internal/tasks"
	"github.com/jeranaias/athena/internal/util"
)

// Default location of the task file, relative to the working directory.
const (
	DefaultDir      = "data"
	DefaultFileName = "athena.txt"
)

// filePerm keeps the task file private to the user.
const filePerm = 0o600

// =============================================================================
// TASK STORE
// =============================================================================

// Store reads and writes the task list as a flat record file.
type Store struct {
	dir  string
	file string
}

// NewStore creates a store for dir/file. Empty arguments fall back to the
// defaults. Nothing touches the disk until Load or Save.
func NewStore(dir, file string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	if file == "" {
		file = DefaultFileName
	}
	return &Store{dir: dir, file: file}
}

// Path returns the full path of the task file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.file)
}

// Load reads the task file. A missing file yields an empty list; a file that
// cannot be parsed is an error and is left untouched on disk.
func (s *Store) Load() (*tasks.List, error) {
	path := s.Path()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return tasks.NewList(), nil
	}
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	loaded, err := Decode(f)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			se.Path = path
			return nil, se
		}
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	return tasks.NewListFrom(loaded), nil
}

// Save rewrites the whole task file atomically, creating the directory when
// needed. It does not clear the list's dirty flag; callers do that once Save
// has returned nil.
func (s *Store) Save(list *tasks.List) error {
	path := s.Path()
	err := util.AtomicWrite(path, filePerm, func(w io.Writer) error {
		return Encode(w, list.All())
	})
	if err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	return nil
}
