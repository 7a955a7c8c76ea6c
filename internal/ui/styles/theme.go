// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the logdiff TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderPath  lipgloss.Style

	// ==========================================================================
	// DIFF LINE STYLES
	// ==========================================================================

	UnchangedLine lipgloss.Style
	AddedLine     lipgloss.Style
	DeletedLine   lipgloss.Style
	MovedLine     lipgloss.Style

	AddedGutterStyle   lipgloss.Style
	DeletedGutterStyle lipgloss.Style
	MovedGutterStyle   lipgloss.Style
	BlankGutterStyle   lipgloss.Style

	LineNumber lipgloss.Style

	// ==========================================================================
	// PANE STYLES
	// ==========================================================================

	PaneBorder        lipgloss.Style
	PaneBorderFocused lipgloss.Style
	PaneTitle         lipgloss.Style

	// ==========================================================================
	// PATTERN INPUT STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputInvalid     lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatsAdded   lipgloss.Style
	StatsDeleted lipgloss.Style
	StatsMoved   lipgloss.Style
	WatchLive    lipgloss.Style
	WatchOff     lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTheme creates a new theme, auto-detecting the terminal background.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeFor creates a theme honoring a configured preference.
// "dark" and "light" force the background assumption; anything else
// (including "auto") falls back to terminal detection.
func NewThemeFor(preference string) *Theme {
	switch preference {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}

	colorProfile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()
	switch preference {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.HeaderPath = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Diff lines
	t.UnchangedLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.AddedLine = lipgloss.NewStyle().
		Foreground(AddedFg)

	t.DeletedLine = lipgloss.NewStyle().
		Foreground(DeletedFg)

	t.MovedLine = lipgloss.NewStyle().
		Foreground(MovedFg)

	t.AddedGutterStyle = lipgloss.NewStyle().
		Foreground(AddedGutter).
		Bold(true)

	t.DeletedGutterStyle = lipgloss.NewStyle().
		Foreground(DeletedGutter).
		Bold(true)

	t.MovedGutterStyle = lipgloss.NewStyle().
		Foreground(MovedGutter).
		Bold(true)

	t.BlankGutterStyle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.LineNumber = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Right)

	// Panes
	t.PaneBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.PaneBorderFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing)

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	// Pattern input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Invalid regex gets the error color while the user is still typing,
	// so bad patterns are visible before they are applied.
	t.InputInvalid = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatsAdded = lipgloss.NewStyle().
		Foreground(AddedGutter).
		Bold(true)

	t.StatsDeleted = lipgloss.NewStyle().
		Foreground(DeletedGutter).
		Bold(true)

	t.StatsMoved = lipgloss.NewStyle().
		Foreground(MovedGutter).
		Bold(true)

	t.WatchLive = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.WatchOff = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Error boxes
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Rose).
		Padding(1, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
