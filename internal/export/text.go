// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/diff"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// TextExporter exports comparison results as plain unified text.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export converts a comparison result to plain text.
func (e *TextExporter) Export(result *compare.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	var sb strings.Builder

	if e.options.IncludeMetadata {
		stats := result.Diff.Statistics
		fmt.Fprintf(&sb, "# logdiff %s\n", formatTimestamp(result.ComputedAt))
		fmt.Fprintf(&sb, "# left:    %s (%d lines)\n", result.LeftPath, result.LeftLines)
		fmt.Fprintf(&sb, "# right:   %s (%d lines)\n", result.RightPath, result.RightLines)
		if result.Pattern != "" {
			fmt.Fprintf(&sb, "# pattern: %s\n", result.Pattern)
		}
		fmt.Fprintf(&sb, "# changes: +%d -%d ↔%d =%d\n",
			stats.Additions, stats.Deletions, stats.Moves, stats.Unchanged)
		for _, block := range result.Diff.MovedBlocks {
			fmt.Fprintf(&sb, "# moved:   lines %d-%d -> %d-%d\n",
				block.SourceStart, block.SourceEnd, block.DestStart, block.DestEnd)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(compare.Unified(result.Diff.Lines))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for text.
func (e *TextExporter) MimeType() string {
	return "text/plain; charset=utf-8"
}

// stateLabel is shared by the structured exporters.
func stateLabel(s diff.DiffState) string {
	return s.String()
}
