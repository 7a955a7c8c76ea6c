// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view provides the main diff view for the TUI.
package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/logdiff/internal/export"
	"github.com/jeranaias/logdiff/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all Bubble Tea messages for the diff view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.editingPattern {
			return m.updatePatternEdit(msg)
		}
		return m.updateKeys(msg)

	case DiffComputedMsg:
		m.result = msg.Result
		m.viewer.SetResult(msg.Result.Diff)
		m.statusBar.SetResult(msg.Result.Diff)
		m.statusBar.SetError("")
		m.statusBar.Status = m.idleStatus()
		if m.store != nil && m.cfg.History.Enabled {
			return m, RecordHistoryCmd(m.store, msg.Result, m.cfg.History.MaxEntries)
		}
		return m, nil

	case DiffErrorMsg:
		m.statusBar.SetError(msg.Err.Error())
		return m, nil

	case FileChangedMsg:
		// A watched file changed; recompute and keep listening. The
		// watcher may already be gone if watch mode was toggled off
		// while this event was in flight.
		m.statusBar.Status = components.StatusComputing
		if m.watcher == nil {
			return m, ComputeDiffCmd(m.workflow, m.request())
		}
		return m, tea.Batch(
			ComputeDiffCmd(m.workflow, m.request()),
			WaitForChangeCmd(m.watcher),
		)

	case WatchStoppedMsg:
		m.watching = false
		m.statusBar.Watching = false
		return m, nil

	case ExportDoneMsg:
		m.notice = "exported to " + msg.Path
		return m, nil

	case ExportErrorMsg:
		m.statusBar.SetError("export failed: " + msg.Err.Error())
		return m, nil

	case HistoryRecordedMsg:
		// History failures are non-fatal; surface them without blocking.
		if msg.Err != nil {
			m.notice = "history: " + msg.Err.Error()
		}
		return m, nil
	}

	return m, nil
}

// updateKeys handles keystrokes in browse mode.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up):
		m.viewer.ScrollUp(1)

	case key.Matches(msg, m.keyMap.Down):
		m.viewer.ScrollDown(1)

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewer.ScrollUp(m.viewerHeight())

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewer.ScrollDown(m.viewerHeight())

	case key.Matches(msg, m.keyMap.Top):
		m.viewer.ScrollTop()

	case key.Matches(msg, m.keyMap.Bottom):
		m.viewer.ScrollBottom()

	case key.Matches(msg, m.keyMap.EditPattern):
		m.editingPattern = true
		m.patternInput.SetValue(m.pattern)
		m.patternInput.CursorEnd()
		m.validatePatternInput()
		return m, m.patternInput.Focus()

	case key.Matches(msg, m.keyMap.Rerun):
		m.statusBar.Status = components.StatusComputing
		return m, ComputeDiffCmd(m.workflow, m.request())

	case key.Matches(msg, m.keyMap.ToggleWatch):
		if m.watching {
			m.stopWatch()
			return m, nil
		}
		if err := m.startWatch(); err != nil {
			m.statusBar.SetError("watch unavailable: " + err.Error())
			return m, nil
		}
		m.statusBar.Status = components.StatusWatching
		return m, WaitForChangeCmd(m.watcher)

	case key.Matches(msg, m.keyMap.ToggleNumbers):
		m.cfg.UI.ShowLineNumbers = !m.cfg.UI.ShowLineNumbers
		m.viewer.SetShowLineNumbers(m.cfg.UI.ShowLineNumbers)

	case key.Matches(msg, m.keyMap.Export):
		if m.result == nil {
			m.statusBar.SetError("nothing to export yet")
			return m, nil
		}
		opts := export.DefaultOptions()
		opts.Theme = m.cfg.UI.Theme
		return m, ExportCmd(m.result, m.cfg.Export.Format, opts)

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// updatePatternEdit handles keystrokes while the pattern field is focused.
func (m Model) updatePatternEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		// Invalid patterns never apply; the field stays open so the
		// user can fix the regex.
		if !m.patternValid {
			return m, nil
		}
		m.pattern = m.patternInput.Value()
		m.editingPattern = false
		m.patternInput.Blur()
		m.statusBar.Status = components.StatusComputing
		return m, ComputeDiffCmd(m.workflow, m.request())

	case key.Matches(msg, m.keyMap.Cancel):
		m.editingPattern = false
		m.patternInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	m.validatePatternInput()
	return m, cmd
}

// resize propagates new dimensions to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.viewer.SetSize(width, m.viewerHeight())
}

// viewerHeight is the terminal height minus the header, status bar, and
// the pattern input line when it is open.
func (m Model) viewerHeight() int {
	h := m.height - 2
	if m.editingPattern {
		h -= 2
	}
	if h < 1 {
		h = 1
	}
	return h
}
