// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/diff"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports comparison results to a standalone HTML page with
// embedded CSS, rendered side by side.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a comparison result to HTML format.
func (e *HTMLExporter) Export(result *compare.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>logdiff: %s vs %s</title>\n",
		html.EscapeString(result.LeftPath), html.EscapeString(result.RightPath)))
	sb.WriteString("    <meta name=\"generator\" content=\"logdiff\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n",
		result.ComputedAt.Format(time.RFC3339)))
	sb.WriteString(e.getCSS())
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", e.options.Theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(result))
	}

	sb.WriteString("        <main class=\"diff\">\n")
	sb.WriteString("            <table class=\"diff-table\">\n")
	sb.WriteString("                <thead><tr><th class=\"num\"></th><th>Left</th><th class=\"num\"></th><th>Right</th></tr></thead>\n")
	sb.WriteString("                <tbody>\n")
	for i := range result.Diff.Lines {
		sb.WriteString(e.renderRow(&result.Diff.Lines[i]))
	}
	sb.WriteString("                </tbody>\n")
	sb.WriteString("            </table>\n")
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	sb.WriteString(fmt.Sprintf("            <p>Exported from <strong>logdiff</strong> on %s</p>\n",
		time.Now().Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html; charset=utf-8"
}

// renderHeader renders the metadata block.
func (e *HTMLExporter) renderHeader(result *compare.Result) string {
	stats := result.Diff.Statistics

	var sb strings.Builder
	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString("            <h1>Log Comparison</h1>\n")
	sb.WriteString("            <dl class=\"meta\">\n")
	sb.WriteString(fmt.Sprintf("                <dt>Left</dt><dd>%s (%d lines)</dd>\n",
		html.EscapeString(result.LeftPath), result.LeftLines))
	sb.WriteString(fmt.Sprintf("                <dt>Right</dt><dd>%s (%d lines)</dd>\n",
		html.EscapeString(result.RightPath), result.RightLines))
	if result.Pattern != "" {
		sb.WriteString(fmt.Sprintf("                <dt>Pattern</dt><dd><code>%s</code></dd>\n",
			html.EscapeString(result.Pattern)))
	}
	sb.WriteString(fmt.Sprintf("                <dt>Computed</dt><dd>%s</dd>\n",
		formatTimestamp(result.ComputedAt)))
	sb.WriteString("            </dl>\n")
	sb.WriteString("            <p class=\"stats\">\n")
	sb.WriteString(fmt.Sprintf("                <span class=\"added\">+%d added</span>\n", stats.Additions))
	sb.WriteString(fmt.Sprintf("                <span class=\"deleted\">-%d deleted</span>\n", stats.Deletions))
	sb.WriteString(fmt.Sprintf("                <span class=\"moved\">↔%d moved</span>\n", stats.Moves))
	sb.WriteString(fmt.Sprintf("                <span class=\"unchanged\">=%d unchanged</span>\n", stats.Unchanged))
	sb.WriteString("            </p>\n")
	sb.WriteString("        </header>\n")
	return sb.String()
}

// renderRow renders one diff line as a four-column table row.
func (e *HTMLExporter) renderRow(line *diff.DiffLine) string {
	class := stateLabel(line.State)

	leftNum, leftText := "", ""
	if line.Left != nil {
		leftNum = fmt.Sprintf("%d", line.Left.Number)
		leftText = html.EscapeString(line.Left.Text)
	}
	rightNum, rightText := "", ""
	if line.Right != nil {
		rightNum = fmt.Sprintf("%d", line.Right.Number)
		rightText = html.EscapeString(line.Right.Text)
	}

	title := ""
	if line.State == diff.Moved {
		title = fmt.Sprintf(" title=\"moved from line %d to line %d\"", line.MovedFrom, line.MovedTo)
	}

	return fmt.Sprintf("                <tr class=\"%s\"%s><td class=\"num\">%s</td><td>%s</td><td class=\"num\">%s</td><td>%s</td></tr>\n",
		class, title, leftNum, leftText, rightNum, rightText)
}

// getCSS returns the embedded stylesheet.
func (e *HTMLExporter) getCSS() string {
	return `    <style>
        :root {
            --bg: #ffffff;
            --fg: #1f2328;
            --muted: #656d76;
            --border: #d1d9e0;
            --added-bg: #dafbe1;
            --deleted-bg: #ffebe9;
            --moved-bg: #ddf4ff;
        }
        .dark-theme {
            --bg: #0d1117;
            --fg: #e6edf3;
            --muted: #8d96a0;
            --border: #30363d;
            --added-bg: #12261e;
            --deleted-bg: #25171c;
            --moved-bg: #0c2d48;
        }
        body {
            margin: 0;
            background: var(--bg);
            color: var(--fg);
            font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace;
            font-size: 13px;
        }
        .container { max-width: 1400px; margin: 0 auto; padding: 24px; }
        .header h1 { font-size: 18px; margin: 0 0 12px; }
        .meta { display: grid; grid-template-columns: auto 1fr; gap: 2px 12px; margin: 0; }
        .meta dt { color: var(--muted); }
        .meta dd { margin: 0; }
        .stats span { margin-right: 16px; }
        .stats .added { color: #1a7f37; }
        .stats .deleted { color: #cf222e; }
        .stats .moved { color: #0969da; }
        .stats .unchanged { color: var(--muted); }
        .diff-table { border-collapse: collapse; width: 100%; border: 1px solid var(--border); }
        .diff-table th { text-align: left; padding: 4px 8px; border-bottom: 1px solid var(--border); }
        .diff-table td { padding: 1px 8px; white-space: pre-wrap; word-break: break-all; vertical-align: top; }
        .diff-table td.num { color: var(--muted); text-align: right; width: 1%; user-select: none; }
        tr.added td { background: var(--added-bg); }
        tr.deleted td { background: var(--deleted-bg); }
        tr.moved td { background: var(--moved-bg); }
        .footer { margin-top: 24px; color: var(--muted); font-size: 12px; }
    </style>
`
}
