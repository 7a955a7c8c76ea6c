// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view provides the main diff view for the TUI.
package view

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/config"
	"github.com/jeranaias/logdiff/internal/history"
	"github.com/jeranaias/logdiff/internal/source"
	"github.com/jeranaias/logdiff/internal/timestamp"
	"github.com/jeranaias/logdiff/internal/ui/components"
	"github.com/jeranaias/logdiff/internal/ui/styles"
)

// =============================================================================
// DIFF VIEW MODEL
// =============================================================================

// Model is the Bubble Tea model for the diff view.
type Model struct {
	// Configuration and services
	cfg      *config.Config
	workflow *compare.Workflow
	store    *history.Store // nil when history is disabled

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Current comparison
	pattern string
	result  *compare.Result

	// UI components
	header    *components.Header
	viewer    *components.DiffViewer
	statusBar *components.StatusBar

	// Pattern editing
	patternInput   textinput.Model
	editingPattern bool
	patternValid   bool

	// Watch mode
	watcher  source.Watcher
	watching bool

	// Transient state
	notice   string
	showHelp bool

	// Key bindings
	keyMap KeyMap
}

// New creates the diff view model. The store may be nil when history is
// disabled; every history interaction checks for that.
func New(cfg *config.Config, store *history.Store) Model {
	theme := styles.NewThemeFor(cfg.UI.Theme)

	input := textinput.New()
	input.Placeholder = `timestamp regex, e.g. ^\[\d{2}:\d{2}:\d{2}\] `
	input.Prompt = "/ "
	input.CharLimit = 256

	viewer := components.NewDiffViewer(theme)
	viewer.SetShowLineNumbers(cfg.UI.ShowLineNumbers)

	header := components.NewHeader(theme)
	header.SetPaths(cfg.Compare.LeftPath, cfg.Compare.RightPath)

	statusBar := components.NewStatusBar(theme)

	m := Model{
		cfg:          cfg,
		workflow:     compare.Default(),
		store:        store,
		theme:        theme,
		pattern:      cfg.Compare.Pattern,
		header:       header,
		viewer:       viewer,
		statusBar:    statusBar,
		patternInput: input,
		patternValid: true,
		keyMap:       DefaultKeyMap(),
	}

	// Init runs on a copy of the model, so the watcher must be created
	// here for the program's model to hold it.
	if cfg.Watch.Enabled {
		if err := m.startWatch(); err != nil {
			m.statusBar.SetError("watch unavailable: " + err.Error())
		}
	}

	return m
}

// Init kicks off the first comparison and, when watch mode started in New,
// the wait for the first file change.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ComputeDiffCmd(m.workflow, m.request())}
	if m.watcher != nil {
		cmds = append(cmds, WaitForChangeCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// request builds the comparison request from the configured paths and the
// currently applied pattern.
func (m Model) request() compare.Request {
	return compare.Request{
		LeftPath:  m.cfg.Compare.LeftPath,
		RightPath: m.cfg.Compare.RightPath,
		Pattern:   m.pattern,
	}
}

// Result returns the last computed comparison, or nil.
func (m Model) Result() *compare.Result {
	return m.result
}

// Watching reports whether watch mode is active.
func (m Model) Watching() bool {
	return m.watching
}

// startWatch creates a running watcher over both compared files and marks
// watch mode active. NewWatcher returns a started watcher, so there is
// nothing further to arm here.
func (m *Model) startWatch() error {
	debounce := time.Duration(m.cfg.Watch.DebounceMs) * time.Millisecond
	watcher, err := source.NewWatcher(
		[]string{m.cfg.Compare.LeftPath, m.cfg.Compare.RightPath},
		debounce,
	)
	if err != nil {
		return err
	}

	m.watcher = watcher
	m.watching = true
	m.statusBar.Watching = true
	return nil
}

// stopWatch closes the watcher if one is running.
func (m *Model) stopWatch() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	m.watching = false
	m.statusBar.Watching = false
}

// idleStatus is the status to return to once a comparison finishes.
func (m Model) idleStatus() components.Status {
	if m.watching {
		return components.StatusWatching
	}
	return components.StatusReady
}

// validatePatternInput updates the live validity flag for the edit field.
func (m *Model) validatePatternInput() {
	m.patternValid = timestamp.ValidatePattern(m.patternInput.Value()) == nil
}
