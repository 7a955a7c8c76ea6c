// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff provides line-level comparison of two text sequences with
// move detection.
//
// Lines are compared by a derived comparison key (see ComparableLine), so
// callers can strip volatile content such as timestamps before diffing while
// keeping the original text for display. Each output line is classified as
// Added, Deleted, Unchanged, or Moved; contiguous moved lines are grouped
// into MovedBlocks and aggregate statistics are computed from the result.
//
// # Key Types
//
//   - ComparableLine: display text paired with its comparison key
//   - DiffState: classification of an output line
//   - DiffLine: single output line with optional left/right content
//   - DiffResult: ordered lines, statistics, and moved blocks
//   - Engine: the diff algorithm interface (HeckelEngine is the default)
//
// # Usage
//
// Compute a diff between two line sequences:
//
//	engine := diff.New()
//	result := engine.Compute(left, right)
//	for _, line := range result.Lines {
//		fmt.Println(line.State, line.Left, line.Right)
//	}
//
// The engine is a pure function of its inputs: it performs no I/O, retains
// no state between calls, and is safe for concurrent use on independent
// input pairs.
package diff
