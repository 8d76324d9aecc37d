// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and color control for athena.
//
// USABILITY: TTY detection for proper terminal handling
//
// These utilities ensure proper behavior in different environments:
// - Interactive terminals (line editing, colors, markdown help)
// - Piped input or output (plain scanner, no colors)
package cli

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
// Use this to decide between the line editor and a plain scanner.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width we'll use for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsMu      sync.RWMutex
	colorsEnabled bool
)

// ResolveColors decides whether to emit colors from the configured mode
// ("auto", "always", "never"), the --no-color flag and whether stdout is a
// terminal. NO_COLOR is already folded into the mode by the config package.
func ResolveColors(mode string, noColorFlag, stdoutTTY bool) bool {
	if noColorFlag {
		return false
	}
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutTTY
	}
}

// SetColors records the color decision and configures lipgloss accordingly.
func SetColors(enabled bool) {
	colorsMu.Lock()
	colorsEnabled = enabled
	colorsMu.Unlock()

	lipgloss.SetColorProfile(ColorProfile(enabled))
}

// ColorsEnabled returns true if colored output should be used.
func ColorsEnabled() bool {
	colorsMu.RLock()
	defer colorsMu.RUnlock()
	return colorsEnabled
}

// ColorProfile returns the termenv profile for the color decision.
// Returns Ascii (no colors) when colors are disabled.
func ColorProfile(enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	profile := termenv.ColorProfile()
	if profile == termenv.Ascii {
		// Forced on but undetectable (e.g. piped): fall back to basic ANSI.
		return termenv.ANSI
	}
	return profile
}
