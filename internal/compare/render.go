// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/logdiff/internal/diff"
)

// =============================================================================
// SIDE-BY-SIDE RENDERING
// =============================================================================

// SideBySide renders the diff as two aligned plain-text panes. Row i of the
// left pane and row i of the right pane describe the same diff line, so the
// panes scroll in lockstep. Each row carries the state's gutter prefix; a
// side with no content for that row renders the prefix alone.
func SideBySide(lines []diff.DiffLine) (left, right string) {
	leftRows := make([]string, len(lines))
	rightRows := make([]string, len(lines))

	for i, line := range lines {
		leftRows[i] = FormatSide(line.State, line.Left)
		rightRows[i] = FormatSide(line.State, line.Right)
	}

	return strings.Join(leftRows, "\n"), strings.Join(rightRows, "\n")
}

// FormatSide renders one side of one diff line as "<prefix> <text>".
func FormatSide(state diff.DiffState, content *diff.LineContent) string {
	text := ""
	if content != nil {
		text = content.Text
	}
	return state.Prefix() + " " + text
}

// Unified renders the diff as a single pane: deletions carry the left text,
// additions the right, and matched lines the right-hand text. Moved lines
// note their source and destination line numbers.
func Unified(lines []diff.DiffLine) string {
	var b strings.Builder
	for _, line := range lines {
		switch line.State {
		case diff.Deleted:
			fmt.Fprintf(&b, "- %s\n", line.Left.Text)
		case diff.Added:
			fmt.Fprintf(&b, "+ %s\n", line.Right.Text)
		case diff.Moved:
			fmt.Fprintf(&b, "↔ %s (line %d -> %d)\n", line.Right.Text, line.MovedFrom, line.MovedTo)
		default:
			fmt.Fprintf(&b, "  %s\n", line.Right.Text)
		}
	}
	return b.String()
}

// Summary renders one-line statistics for status bars and CLI output.
func Summary(result *Result) string {
	stats := result.Diff.Statistics
	return fmt.Sprintf("+%d -%d ↔%d =%d (%d blocks, %s)",
		stats.Additions, stats.Deletions, stats.Moves, stats.Unchanged,
		len(result.Diff.MovedBlocks), result.Duration.Round(time.Millisecond))
}
