// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the logdiff TUI.
package components

import (
	"strings"

	"github.com/jeranaias/logdiff/internal/diff"
	"github.com/jeranaias/logdiff/internal/ui/styles"
	"github.com/jeranaias/logdiff/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom bar with diff statistics and shortcuts
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusComputing
	StatusWatching
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusComputing:
		return "Comparing..."
	case StatusWatching:
		return "Watching"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusComputing:
		return "~"
	case StatusWatching:
		return "[*]"
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar: state, diff statistics, key hints.
type StatusBar struct {
	Status    Status
	Stats     diff.DiffStatistics
	Blocks    int
	Watching  bool
	ErrorText string
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the available width.
func (sb *StatusBar) SetWidth(width int) {
	sb.Width = width
}

// SetResult updates the statistics shown from a computed diff.
func (sb *StatusBar) SetResult(result *diff.DiffResult) {
	if result == nil {
		sb.Stats = diff.DiffStatistics{}
		sb.Blocks = 0
		return
	}
	sb.Stats = result.Statistics
	sb.Blocks = len(result.MovedBlocks)
}

// SetError puts the bar into the error state with a message.
// An empty message returns the bar to Ready.
func (sb *StatusBar) SetError(message string) {
	sb.ErrorText = message
	if message == "" {
		sb.Status = StatusReady
	} else {
		sb.Status = StatusError
	}
}

// View renders the status bar line.
func (sb *StatusBar) View() string {
	var parts []string

	if sb.Status == StatusError && sb.ErrorText != "" {
		msg := sb.Status.Icon() + " " + sb.ErrorText
		return sb.theme.StatusBar.Width(sb.Width).Render(
			sb.theme.ErrorTitle.Render(util.TruncateWidth(msg, sb.Width-2)))
	}

	parts = append(parts, sb.Status.Icon()+" "+sb.Status.String())

	parts = append(parts,
		sb.theme.StatsAdded.Render("+"+fmtNumber(sb.Stats.Additions)),
		sb.theme.StatsDeleted.Render("-"+fmtNumber(sb.Stats.Deletions)),
		sb.theme.StatsMoved.Render("↔"+fmtNumber(sb.Stats.Moves)),
	)
	if sb.Blocks > 0 {
		parts = append(parts, sb.theme.ShortcutDesc.Render(fmtNumber(sb.Blocks)+" blocks"))
	}

	if sb.Watching {
		parts = append(parts, sb.theme.WatchLive.Render("watch"))
	} else {
		parts = append(parts, sb.theme.WatchOff.Render("watch off"))
	}

	parts = append(parts, sb.renderShortcuts())

	line := strings.Join(parts, "  ")
	return sb.theme.StatusBar.Width(sb.Width).Render(util.TruncateWidth(line, sb.Width-2))
}

// renderShortcuts renders the key hints, trimmed on narrow terminals.
func (sb *StatusBar) renderShortcuts() string {
	key := sb.theme.ShortcutKey.Render
	desc := sb.theme.ShortcutDesc.Render

	if sb.Width < 80 {
		return key("?") + desc(" help")
	}

	shortcuts := []string{
		key("/") + desc(" pattern"),
		key("r") + desc(" rerun"),
		key("w") + desc(" watch"),
		key("q") + desc(" quit"),
	}
	return strings.Join(shortcuts, " ")
}
