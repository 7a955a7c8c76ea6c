// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the logdiff TUI.
package components

import (
	"path/filepath"
	"strings"

	"github.com/jeranaias/logdiff/internal/ui/styles"
	"github.com/jeranaias/logdiff/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with the compared file pair
// =============================================================================

// Header is the top title bar: the app name plus the two file paths.
type Header struct {
	Title     string // Main title (default: "logdiff")
	LeftPath  string
	RightPath string
	Width     int
	theme     *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "logdiff",
		Width: 80,
		theme: theme,
	}
}

// SetPaths updates the compared file pair.
func (h *Header) SetPaths(left, right string) {
	h.LeftPath = left
	h.RightPath = right
}

// SetWidth updates the available width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header line.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)

	var pathPart string
	if h.LeftPath != "" || h.RightPath != "" {
		pair := filepath.Base(h.LeftPath) + " vs " + filepath.Base(h.RightPath)
		// Full paths when the terminal is wide enough
		if h.Width >= 100 {
			pair = h.LeftPath + " vs " + h.RightPath
		}
		avail := h.Width - util.StringWidth(h.Title) - 4
		pathPart = h.theme.HeaderPath.Render(util.TruncateWidth(pair, avail))
	}

	line := title
	if pathPart != "" {
		line += "  " + pathPart
	}

	return h.theme.Header.Width(h.Width).Render(strings.TrimRight(line, " "))
}
