// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands turns a line of user input into a typed Command and
// applies commands to a task list.
package commands

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// =============================================================================
// PARSER
// =============================================================================

// Parser turns input lines into commands using a registry.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser over the given registry.
func NewParser(registry *Registry) *Parser {
	return &Parser{registry: registry}
}

var (
	builtinRegistry = NewRegistry()
	defaultParser   = NewParser(builtinRegistry)
)

// Builtins returns the registry used by Parse. Callers must not Register
// into it.
func Builtins() *Registry {
	return builtinRegistry
}

// Parse parses input with the built-in grammar.
func Parse(input string) (Command, error) {
	return defaultParser.Parse(input)
}

// Parse splits input into keyword and remainder and builds the matching
// command. It fails with an *InputError and has no side effects.
func (p *Parser) Parse(input string) (Command, error) {
	keyword, rest := SplitKeyword(input)

	def := p.registry.Get(keyword)
	if def == nil {
		return nil, newInputError(InvalidCommand)
	}
	return def.parse(rest)
}

// SplitKeyword splits input at its first whitespace character. The
// remainder is returned exactly as typed.
//
//	"todo  buy milk" -> "todo", " buy milk"
func SplitKeyword(input string) (keyword, rest string) {
	idx := strings.IndexFunc(input, unicode.IsSpace)
	if idx == -1 {
		return input, ""
	}
	_, size := utf8.DecodeRuneInString(input[idx:])
	return input[:idx], input[idx+size:]
}

// =============================================================================
// FIELD EXTRACTION
// =============================================================================

// taskName returns the text before the first field marker, trimmed.
func taskName(rest string) (string, error) {
	name, _, _ := strings.Cut(rest, fieldMarker)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", newInputError(MissingTaskName)
	}
	return name, nil
}

// dateTimeField parses the text after the first occurrence of marker.
func dateTimeField(rest, marker string) (t time.Time, err error) {
	_, value, found := strings.Cut(rest, marker)
	if !found {
		return t, newInputError(MissingTaskDateTime)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return t, newInputError(MissingTaskDateTime)
	}

	t, err = ParseDateTime(value)
	if err != nil {
		return t, &InputError{Code: InvalidTaskDateTime, Err: err}
	}
	return t, nil
}

// taskNumber parses a 1-based index. Range is checked at execution.
func taskNumber(rest string) (int, error) {
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, &InputError{Code: MissingTaskNumber, Err: err}
	}
	return n, nil
}

func searchPhrase(rest string) (string, error) {
	if rest == "" {
		return "", newInputError(MissingSearchPhrase)
	}
	return rest, nil
}
