// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color palette and lipgloss styles for the
athena TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Colors (colors.go)

  - Purple - Assistant name and title
  - Cyan - Prompt and todos
  - Amber - Deadlines
  - Rose - Events and errors
  - Emerald - Completed tasks

# Styles (styles.go)

Layout styles (HeaderStyle, StatusBarStyle) and transcript styles
(UserStyle, AssistantNameStyle, ResponseStyle). KindBadge renders a task
kind marker in its color.
*/
package styles
