// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view provides the main diff view for the TUI.
package view

import (
	"strings"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full screen: header, diff panes, the pattern field when
// open, and the status bar.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.header.View())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, m.viewer.View())
	}

	if m.editingPattern {
		sections = append(sections, m.renderPatternInput())
	}

	if m.notice != "" {
		sections = append(sections, m.theme.ShortcutDesc.Render(m.notice))
	}

	sections = append(sections, m.statusBar.View())

	return strings.Join(sections, "\n")
}

// renderPatternInput renders the pattern edit field, switching the prompt
// to the error style while the regex fails to compile.
func (m Model) renderPatternInput() string {
	label := m.theme.InputPrompt.Render("pattern")
	if !m.patternValid {
		label = m.theme.InputInvalid.Render("pattern (invalid)")
	}
	return m.theme.InputContainer.Width(m.width).Render(
		label + " " + m.patternInput.View(),
	)
}

// renderHelp renders the key binding overlay in place of the diff panes.
func (m Model) renderHelp() string {
	lines := m.keyMap.HelpLines()

	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render("Key bindings"))
	for _, line := range lines {
		b.WriteString("\n  ")
		b.WriteString(m.theme.ShortcutDesc.Render(line))
	}
	return b.String()
}
