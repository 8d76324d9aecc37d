// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands turns a line of user input into a typed Command and
// applies commands to a task list.
//
// # Key Types
//
//   - Command: sealed interface over the nine command variants
//   - Registry: keyword table (usage, description, field parser)
//   - Parser: splits keyword from remainder and dispatches through a Registry
//   - InputError: typed failure carrying an ErrorCode
//   - Completer: keyword and marker completion for line editors
//
// # Grammar
//
//	list
//	todo <description>
//	deadline <description> /by <d/M/yyyy Hmm>
//	event <description> /at <d/M/yyyy Hmm>
//	mark <number>
//	unmark <number>
//	delete <number>
//	find <phrase>
//	bye
//
// # Usage
//
//	cmd, err := commands.Parse("deadline return book /by 15/10/2024 1400")
//	if err != nil {
//	    fmt.Println(commands.ErrorMessage(err))
//	    return
//	}
//	reply, err := commands.Execute(cmd, list)
//
// Parsing never touches the list. Task numbers are range-checked when the
// command executes, not when it is parsed.
package commands
