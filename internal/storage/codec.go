// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jeranaias/athena/internal/tasks"
)

// =============================================================================
// RECORD FORMAT
// =============================================================================

// Record layout, one task per line:
//
//	T|0|buy milk
//	D|1|return book|Oct 15 2024 02:00PM
//	E|0|team dinner|Dec 2 2024 06:00PM
const (
	fieldSep = "|"
	flagDone = "1"
	flagTodo = "0"

	// maxRecordSize bounds a single line read by Decode.
	maxRecordSize = 1 << 20
)

// EncodeRecord renders a task as a single record line without the newline.
func EncodeRecord(t *tasks.Task) string {
	flag := flagTodo
	if t.Done() {
		flag = flagDone
	}

	fields := []string{t.Icon(), flag, t.Description()}
	switch t.Kind() {
	case tasks.KindDeadline, tasks.KindEvent:
		fields = append(fields, t.When().Format(tasks.DisplayLayout))
	case tasks.KindTodo:
	}
	return strings.Join(fields, fieldSep)
}

// DecodeRecord parses a single record line.
//
// The description may itself contain the separator: a todo keeps everything
// after the second separator, while deadlines and events take their date from
// after the last one.
func DecodeRecord(line string) (*tasks.Task, error) {
	line = strings.TrimSuffix(line, "\r")

	parts := strings.SplitN(line, fieldSep, 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(parts))
	}
	icon, flag, rest := parts[0], parts[1], parts[2]

	kind, ok := tasks.KindFromIcon(icon)
	if !ok {
		return nil, fmt.Errorf("unknown task type %q", icon)
	}

	var done bool
	switch flag {
	case flagDone:
		done = true
	case flagTodo:
		done = false
	default:
		return nil, fmt.Errorf("invalid done flag %q", flag)
	}

	description := rest
	var when time.Time
	switch kind {
	case tasks.KindDeadline, tasks.KindEvent:
		i := strings.LastIndex(rest, fieldSep)
		if i < 0 {
			return nil, fmt.Errorf("missing date for %s", kind)
		}
		description = rest[:i]

		var err error
		when, err = time.Parse(tasks.DisplayLayout, rest[i+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed date %q: %w", rest[i+1:], err)
		}
	case tasks.KindTodo:
	}

	return tasks.Restore(kind, description, when, done)
}

// =============================================================================
// STREAM ENCODING
// =============================================================================

// Encode writes one record per task, each terminated by a newline.
func Encode(w io.Writer, list []*tasks.Task) error {
	for _, t := range list {
		if _, err := io.WriteString(w, EncodeRecord(t)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads records until EOF. Blank lines are skipped. The first
// malformed record aborts decoding with an *Error carrying its line number;
// no partial list is returned.
func Decode(r io.Reader) ([]*tasks.Task, error) {
	var out []*tasks.Task

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := DecodeRecord(line)
		if err != nil {
			return nil, &Error{Op: "decode", Line: lineNo, Err: err}
		}
		out = append(out, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	return out, nil
}
