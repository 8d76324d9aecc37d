// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "sort"

// Command keywords.
const (
	KeywordList     = "list"
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordMark     = "mark"
	KeywordUnmark   = "unmark"
	KeywordDelete   = "delete"
	KeywordFind     = "find"
	KeywordBye      = "bye"
)

// Field markers inside the remainder of a command.
const (
	fieldMarker = "/"
	byMarker    = "/by"
	atMarker    = "/at"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Definition describes one keyword of the grammar.
type Definition struct {
	// Keyword is the first word of the input, e.g. "deadline"
	Keyword string

	// Usage shows argument syntax, e.g. "deadline <description> /by <d/M/yyyy Hmm>"
	Usage string

	// Description is shown in help output
	Description string

	// Example is a complete valid input
	Example string

	// parse builds the command from the text after the keyword
	parse func(rest string) (Command, error)

	// order keeps help output in grammar order
	order int
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry maps keywords to their definitions.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry creates a registry holding the built-in grammar.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	r.registerBuiltins()
	return r
}

// Register adds a definition, replacing any with the same keyword.
func (r *Registry) Register(def *Definition) {
	if def.order == 0 {
		def.order = len(r.defs) + 1
	}
	r.defs[def.Keyword] = def
}

// Get returns the definition for keyword, or nil.
func (r *Registry) Get(keyword string) *Definition {
	return r.defs[keyword]
}

// All returns every definition in grammar order.
func (r *Registry) All() []*Definition {
	defs := make([]*Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].order < defs[j].order
	})
	return defs
}

// Keywords returns every keyword in grammar order.
func (r *Registry) Keywords() []string {
	defs := r.All()
	keywords := make([]string, len(defs))
	for i, def := range defs {
		keywords[i] = def.Keyword
	}
	return keywords
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.Register(&Definition{
		Keyword:     KeywordList,
		Usage:       "list",
		Description: "Show all tasks",
		Example:     "list",
		parse: func(string) (Command, error) {
			return ListCommand{}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordTodo,
		Usage:       "todo <description>",
		Description: "Add a task",
		Example:     "todo buy milk",
		parse: func(rest string) (Command, error) {
			name, err := taskName(rest)
			if err != nil {
				return nil, err
			}
			return TodoCommand{Description: name}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordDeadline,
		Usage:       "deadline <description> /by <d/M/yyyy Hmm>",
		Description: "Add a task with a due date",
		Example:     "deadline submit report /by 2/12/2024 1800",
		parse: func(rest string) (Command, error) {
			name, err := taskName(rest)
			if err != nil {
				return nil, err
			}
			by, err := dateTimeField(rest, byMarker)
			if err != nil {
				return nil, err
			}
			return DeadlineCommand{Description: name, By: by}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordEvent,
		Usage:       "event <description> /at <d/M/yyyy Hmm>",
		Description: "Add an event at a date and time",
		Example:     "event concert /at 2/12/2024 1800",
		parse: func(rest string) (Command, error) {
			name, err := taskName(rest)
			if err != nil {
				return nil, err
			}
			at, err := dateTimeField(rest, atMarker)
			if err != nil {
				return nil, err
			}
			return EventCommand{Description: name, At: at}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordMark,
		Usage:       "mark <number>",
		Description: "Mark a task as done",
		Example:     "mark 2",
		parse: func(rest string) (Command, error) {
			n, err := taskNumber(rest)
			if err != nil {
				return nil, err
			}
			return MarkCommand{Index: n}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordUnmark,
		Usage:       "unmark <number>",
		Description: "Mark a task as not done",
		Example:     "unmark 2",
		parse: func(rest string) (Command, error) {
			n, err := taskNumber(rest)
			if err != nil {
				return nil, err
			}
			return UnmarkCommand{Index: n}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordDelete,
		Usage:       "delete <number>",
		Description: "Remove a task",
		Example:     "delete 2",
		parse: func(rest string) (Command, error) {
			n, err := taskNumber(rest)
			if err != nil {
				return nil, err
			}
			return DeleteCommand{Index: n}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordFind,
		Usage:       "find <phrase>",
		Description: "List tasks whose description contains the phrase",
		Example:     "find milk",
		parse: func(rest string) (Command, error) {
			phrase, err := searchPhrase(rest)
			if err != nil {
				return nil, err
			}
			return FindCommand{Phrase: phrase}, nil
		},
	})

	r.Register(&Definition{
		Keyword:     KeywordBye,
		Usage:       "bye",
		Description: "Save and exit",
		Example:     "bye",
		parse: func(string) (Command, error) {
			return ShutdownCommand{}, nil
		},
	})
}
