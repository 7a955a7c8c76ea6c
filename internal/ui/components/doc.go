// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the logdiff TUI.

This package contains styled components built on top of the Lip Gloss
library, composed into the full application by the view package.

# Components

DiffViewer (diff_viewer.go) - Aligned side-by-side diff display with
scrolling, per-state gutters (+, -, moved) and optional line numbers.
Both panes always render the same number of rows.

Header (header.go) - Title bar showing the compared file pair, switching
between basenames and full paths based on terminal width.

StatusBar (statusbar.go) - Bottom bar with application status, diff
statistics, the watch-mode indicator, and key hints.

# Design Principles

1. Components hold no application logic: the view package feeds them a
   computed diff result and dimensions, and they render strings.
2. All colors come from the styles package so light/dark adaptation is
   uniform.
3. ACCESSIBILITY: every state change carries a shape indicator alongside
   its color.
*/
package components
