// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPersistence matches every error produced while reading or writing the
// task file.
var ErrPersistence = errors.New("persistence error")

// Error describes a failed storage operation.
type Error struct {
	Op   string // "load", "save", "decode", "read"
	Path string // file path, empty when decoding a bare stream
	Line int    // 1-based record line, 0 when not applicable
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("storage: ")
	sb.WriteString(e.Op)
	if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " line %d", e.Line)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrPersistence.
func (e *Error) Is(target error) bool {
	return target == ErrPersistence
}
