// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the logdiff TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/logdiff/internal/diff"
	"github.com/jeranaias/logdiff/internal/ui/styles"
	"github.com/jeranaias/logdiff/internal/util"
)

// =============================================================================
// DIFF VIEWER
// =============================================================================

// DiffViewer renders an aligned side-by-side view of a diff result.
// Both panes always have the same number of rows: a line that exists on
// only one side leaves a blank row on the other.
type DiffViewer struct {
	result          *diff.DiffResult
	width           int
	height          int
	scrollPos       int
	showLineNumbers bool
	theme           *styles.Theme
}

// NewDiffViewer creates a new diff viewer.
func NewDiffViewer(theme *styles.Theme) *DiffViewer {
	return &DiffViewer{
		width:           80,
		height:          24,
		showLineNumbers: true,
		theme:           theme,
	}
}

// SetResult replaces the displayed diff and clamps the scroll position.
func (dv *DiffViewer) SetResult(result *diff.DiffResult) {
	dv.result = result
	dv.clampScroll()
}

// SetSize sets the viewer dimensions.
func (dv *DiffViewer) SetSize(width, height int) {
	dv.width = width
	dv.height = height
	dv.clampScroll()
}

// SetShowLineNumbers toggles the line number gutter.
func (dv *DiffViewer) SetShowLineNumbers(show bool) {
	dv.showLineNumbers = show
}

// ScrollUp scrolls the view up.
func (dv *DiffViewer) ScrollUp(lines int) {
	dv.scrollPos -= lines
	if dv.scrollPos < 0 {
		dv.scrollPos = 0
	}
}

// ScrollDown scrolls the view down.
func (dv *DiffViewer) ScrollDown(lines int) {
	dv.scrollPos += lines
	dv.clampScroll()
}

// ScrollTop jumps to the first row.
func (dv *DiffViewer) ScrollTop() {
	dv.scrollPos = 0
}

// ScrollBottom jumps so the last row is visible.
func (dv *DiffViewer) ScrollBottom() {
	dv.scrollPos = dv.maxScroll()
}

// ScrollPos returns the current top row index.
func (dv *DiffViewer) ScrollPos() int {
	return dv.scrollPos
}

func (dv *DiffViewer) maxScroll() int {
	if dv.result == nil {
		return 0
	}
	max := len(dv.result.Lines) - dv.height
	if max < 0 {
		return 0
	}
	return max
}

func (dv *DiffViewer) clampScroll() {
	if max := dv.maxScroll(); dv.scrollPos > max {
		dv.scrollPos = max
	}
	if dv.scrollPos < 0 {
		dv.scrollPos = 0
	}
}

// =============================================================================
// RENDERING
// =============================================================================

const lineNumWidth = 5

// View renders the visible window of the diff.
func (dv *DiffViewer) View() string {
	if dv.result == nil || len(dv.result.Lines) == 0 {
		return dv.theme.BlankGutterStyle.Render("No differences")
	}

	paneWidth := dv.paneWidth()
	start := dv.scrollPos
	end := start + dv.height
	if end > len(dv.result.Lines) {
		end = len(dv.result.Lines)
	}

	var content strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			content.WriteString("\n")
		}
		line := dv.result.Lines[i]
		left := dv.renderSide(line, line.Left, paneWidth)
		right := dv.renderSide(line, line.Right, paneWidth)
		content.WriteString(left)
		content.WriteString(" | ")
		content.WriteString(right)
	}

	return content.String()
}

// paneWidth returns the content width of one pane: total width minus the
// 3-column separator, split in two.
func (dv *DiffViewer) paneWidth() int {
	w := (dv.width - 3) / 2
	if w < 10 {
		w = 10
	}
	return w
}

// renderSide renders one half of a row: gutter, optional line number, text.
func (dv *DiffViewer) renderSide(line diff.DiffLine, side *diff.LineContent, width int) string {
	gutter, gutterStyle, textStyle := dv.stylesFor(line.State)

	if side == nil {
		// Blank row on this side; keep the column width.
		return dv.theme.BlankGutterStyle.Render(util.PadWidth("", width))
	}

	textWidth := width - 2 // gutter char + space
	var numPart string
	if dv.showLineNumbers {
		numPart = dv.theme.LineNumber.Render(util.PadWidth(toStr(side.Number), lineNumWidth)) + " "
		textWidth -= lineNumWidth + 1
	}

	text := util.PadWidth(side.Text, textWidth)
	return gutterStyle.Render(gutter) + " " + numPart + textStyle.Render(text)
}

// stylesFor maps a diff state to its gutter character and styles.
func (dv *DiffViewer) stylesFor(state diff.DiffState) (string, lipgloss.Style, lipgloss.Style) {
	switch state {
	case diff.Added:
		return "+", dv.theme.AddedGutterStyle, dv.theme.AddedLine
	case diff.Deleted:
		return "-", dv.theme.DeletedGutterStyle, dv.theme.DeletedLine
	case diff.Moved:
		return "↔", dv.theme.MovedGutterStyle, dv.theme.MovedLine
	default:
		return " ", dv.theme.BlankGutterStyle, dv.theme.UnchangedLine
	}
}
