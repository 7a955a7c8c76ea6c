// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view provides the main diff view for the TUI.
//
// This file defines the Bubble Tea message types and command creators used
// by the diff view:
//   - Comparison: diff runs completing or failing
//   - Watching: file change notifications
//   - Export: export completion and failure
//   - History: background persistence results
//
// All message types follow Bubble Tea conventions and are immutable.
package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/export"
	"github.com/jeranaias/logdiff/internal/history"
	"github.com/jeranaias/logdiff/internal/source"
)

// =============================================================================
// MESSAGES
// =============================================================================

// DiffComputedMsg delivers a completed comparison.
type DiffComputedMsg struct {
	Result *compare.Result
}

// DiffErrorMsg signals that a comparison failed.
type DiffErrorMsg struct {
	Err error
}

// FileChangedMsg signals that a watched file changed on disk.
type FileChangedMsg struct {
	Path string
}

// WatchStoppedMsg signals that the watcher shut down.
type WatchStoppedMsg struct{}

// ExportDoneMsg delivers the path of a finished export.
type ExportDoneMsg struct {
	Path string
}

// ExportErrorMsg signals that an export failed.
type ExportErrorMsg struct {
	Err error
}

// HistoryRecordedMsg signals that a run was persisted (or why it was not).
type HistoryRecordedMsg struct {
	Err error
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// computeTimeout bounds a single comparison; large files are read and
// diffed well inside this on any reasonable machine.
const computeTimeout = 30 * time.Second

// ComputeDiffCmd creates a command that runs the comparison workflow.
func ComputeDiffCmd(workflow *compare.Workflow, req compare.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		result, err := workflow.Run(ctx, req)
		if err != nil {
			return DiffErrorMsg{Err: err}
		}
		return DiffComputedMsg{Result: result}
	}
}

// WaitForChangeCmd creates a command that blocks until the watcher reports
// a change. The caller re-issues it after handling each FileChangedMsg.
func WaitForChangeCmd(watcher source.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-watcher.Events()
		if !ok {
			return WatchStoppedMsg{}
		}
		return FileChangedMsg{Path: event.Path}
	}
}

// ExportCmd creates a command that writes the result to a file in the
// requested format.
func ExportCmd(result *compare.Result, format string, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		exporter, err := export.ForFormat(format, opts)
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		path, err := export.ExportToFile(result, exporter, opts)
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}

// RecordHistoryCmd creates a command that persists a run in the background.
// A nil store disables history without special-casing the caller.
func RecordHistoryCmd(store *history.Store, result *compare.Result, maxEntries int) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return HistoryRecordedMsg{}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Record(ctx, result); err != nil {
			return HistoryRecordedMsg{Err: err}
		}
		if err := store.Prune(ctx, maxEntries); err != nil {
			return HistoryRecordedMsg{Err: err}
		}
		return HistoryRecordedMsg{}
	}
}
