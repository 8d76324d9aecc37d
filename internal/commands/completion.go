// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// =============================================================================
// COMPLETER
// =============================================================================

// Completer suggests keywords and field markers for a partially typed line.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer over the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns full-line candidates for line. While the keyword is being
// typed it offers matching keywords; after a deadline or event description it
// offers the /by or /at marker.
func (c *Completer) Complete(line string) []string {
	keyword, rest := SplitKeyword(line)

	if len(keyword) == len(line) {
		var out []string
		for _, kw := range c.registry.Keywords() {
			if strings.HasPrefix(kw, keyword) {
				out = append(out, kw+" ")
			}
		}
		return out
	}

	var marker string
	switch keyword {
	case KeywordDeadline:
		marker = byMarker
	case KeywordEvent:
		marker = atMarker
	default:
		return nil
	}
	if strings.Contains(rest, marker) || strings.TrimSpace(rest) == "" {
		return nil
	}

	// Complete a partially typed marker ("/b" -> "/by "), or append one.
	trimmed := strings.TrimRight(line, " ")
	if idx := strings.LastIndex(trimmed, " "); idx >= 0 {
		last := trimmed[idx+1:]
		if strings.HasPrefix(last, fieldMarker) && strings.HasPrefix(marker, last) {
			return []string{trimmed[:idx+1] + marker + " "}
		}
	}
	return []string{trimmed + " " + marker + " "}
}
