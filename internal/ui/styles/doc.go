// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the logdiff TUI.

This package defines the complete color palette and style set used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Diff State Colors

Each diff state gets a gutter color and a line color:

	AddedFg / AddedGutter     - Lines present only in the right file
	DeletedFg / DeletedGutter - Lines present only in the left file
	MovedFg / MovedGutter     - Lines present in both files at new positions
	TextPrimary               - Unchanged lines

## Semantic Colors

	Rose    - Errors and invalid pattern input
	Amber   - Warnings
	Emerald - Success states and the watch-mode live indicator
	Cyan    - Brand color and focused-pane highlight

# Theme System (theme.go)

Theme aggregates every style the views need: diff line and gutter styles,
pane borders, the pattern input (including the invalid-regex style), the
status bar, and error boxes. Construct with NewTheme for auto-detection or
NewThemeFor("dark"|"light"|"auto") to honor the configured preference.

# Accessibility

Status messages carry ASCII shape indicators ([OK], [X], [!]) alongside
high-contrast colors, and diff gutters carry +/-/moved markers, so color
is never the only signal.
*/
package styles
