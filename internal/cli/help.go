// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - Help output for athena.
//
// The task command reference is generated from the command registry so it
// always matches what the parser accepts.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/athena/internal/commands"
)

// CommandReference returns the task command grammar as a markdown document.
func CommandReference(registry *commands.Registry) string {
	var sb strings.Builder

	sb.WriteString("# Task commands\n\n")
	sb.WriteString("| Command | What it does | Example |\n")
	sb.WriteString("|---|---|---|\n")
	for _, def := range registry.All() {
		fmt.Fprintf(&sb, "| `%s` | %s | `%s` |\n", def.Usage, def.Description, def.Example)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Dates are written as `%s`, e.g. `15/10/2024 1400` for 2pm.\n", commands.InputLayout)
	sb.WriteString("Task numbers are the ones shown by `list`.\n")

	return sb.String()
}

// plainReference renders the grammar as aligned text for non-terminals.
func plainReference(registry *commands.Registry) string {
	defs := registry.All()

	width := 0
	for _, def := range defs {
		width = max(width, len(def.Usage))
	}

	var sb strings.Builder
	sb.WriteString("Task commands:\n")
	for _, def := range defs {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, def.Usage, def.Description)
	}
	fmt.Fprintf(&sb, "\nDates are written as %s, e.g. 15/10/2024 1400 for 2pm.\n", commands.InputLayout)
	return sb.String()
}

// RenderCommandReference renders the grammar through glamour when writing to
// a color terminal, and as plain text otherwise.
func RenderCommandReference(registry *commands.Registry, styled bool, width int) string {
	if !styled {
		return plainReference(registry)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plainReference(registry)
	}
	out, err := renderer.Render(CommandReference(registry))
	if err != nil {
		return plainReference(registry)
	}
	return out
}

// HandleHelp prints CLI usage followed by the task command reference.
func HandleHelp(w io.Writer) {
	fmt.Fprintln(w, Usage())
	fmt.Fprint(w, RenderCommandReference(commands.Builtins(), ColorsEnabled(), GetTerminalWidth()))
}
