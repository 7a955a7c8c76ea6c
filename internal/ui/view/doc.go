// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package view provides the interactive diff view, the main Bubble Tea model
of the logdiff TUI.

The model composes the components package (header, diff viewer, status bar)
with a textinput for the timestamp pattern and drives the comparison
workflow:

  - On startup it runs the configured comparison and, when watch mode is
    enabled, starts a file watcher.
  - "/" opens the pattern field. The field validates the regex on every
    keystroke and refuses to apply an invalid pattern; Enter reruns the
    comparison with the new pattern.
  - "w" toggles watch mode. While watching, a change to either file
    recomputes the diff automatically.
  - "e" exports the current result in the configured format.

Completed runs are recorded to the history store in the background when
history is enabled. History failures surface as a notice line and never
interrupt the session.

File layout follows the usual Bubble Tea split: model.go (state and
construction), update.go (message handling), view.go (rendering),
messages.go (message types and commands), keys.go (bindings).
*/
package view
