// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

// Implementation note: the algorithm follows Heckel's approach rather than an
// edit-script backtrace. Lines occurring exactly once on each side are linked
// as anchors, remaining duplicates are paired greedily left to right, and a
// single pass over the right sequence emits the output while flushing pending
// deletions. A final longest-increasing-subsequence pass over the matched
// old-indices separates genuine relocations from the stable backbone.
//
// P. Heckel, "A technique for isolating differences between files",
// Communications of the ACM, 21(4), 1978.

// =============================================================================
// ENGINE INTERFACE
// =============================================================================

// Engine is the diff algorithm abstraction. A single implementation exists
// today (HeckelEngine); the interface allows substituting an alternative
// alignment strategy without touching callers.
type Engine interface {
	// Compute diffs two ordered line sequences. It is total: every
	// well-typed input pair, including empty sequences, yields a result.
	Compute(a, b []ComparableLine) *DiffResult
}

// New returns the default diff engine.
func New() Engine {
	return &HeckelEngine{}
}

// HeckelEngine implements Engine using symbol-table anchor matching with
// greedy duplicate resolution and LIS-based move classification. The zero
// value is ready to use; the engine holds no state between calls.
type HeckelEngine struct{}

// Compute implements Engine.
func (e *HeckelEngine) Compute(a, b []ComparableLine) *DiffResult {
	table := buildSymbolTable(a, b)
	oldToNew, newToOld := linkAnchors(a, b, table)
	lines, matches := buildAlignment(a, b, oldToNew, newToOld)
	blocks := classifyMoves(lines, matches)
	return newResult(lines, blocks)
}

// =============================================================================
// SYMBOL TABLE
// =============================================================================

// symbolCount tracks how many times a comparison key occurs on each side.
type symbolCount struct {
	inA int
	inB int
}

// buildSymbolTable tabulates occurrence counts per distinct comparison key.
// O(|a|+|b|) time, O(distinct keys) space.
func buildSymbolTable(a, b []ComparableLine) map[string]*symbolCount {
	table := make(map[string]*symbolCount, len(a)+len(b))
	for _, line := range a {
		count := table[line.Key]
		if count == nil {
			count = &symbolCount{}
			table[line.Key] = count
		}
		count.inA++
	}
	for _, line := range b {
		count := table[line.Key]
		if count == nil {
			count = &symbolCount{}
			table[line.Key] = count
		}
		count.inB++
	}
	return table
}

// =============================================================================
// ANCHOR LINKER
// =============================================================================

// unlinked marks a position with no correspondence in the other sequence.
const unlinked = -1

// linkAnchors produces the position correspondence between a and b as two
// parallel arrays: oldToNew[i] is the linked index in b (or unlinked), and
// newToOld[j] the linked index in a.
//
// Two ordered passes:
//  1. Lines whose key occurs exactly once on each side are linked first.
//     These are the reliable anchors; there is no ambiguity about which
//     occurrence matches which.
//  2. Remaining lines whose key occurs on both sides are paired greedily:
//     each unlinked position in a takes the first still-unlinked position
//     in b with an equal key, in left-to-right order.
//
// Positions whose key is absent from the other side, or whose duplicates are
// exhausted, stay unlinked and surface later as Added/Deleted.
func linkAnchors(a, b []ComparableLine, table map[string]*symbolCount) (oldToNew, newToOld []int) {
	oldToNew = make([]int, len(a))
	newToOld = make([]int, len(b))
	for i := range oldToNew {
		oldToNew[i] = unlinked
	}
	for j := range newToOld {
		newToOld[j] = unlinked
	}

	// Index b's positions per key up front so both passes stay linear in
	// the input instead of rescanning b for every lookup. Queues are
	// consumed front to first-unlinked, preserving the greedy leftmost
	// tie-break.
	positionsInB := make(map[string][]int, len(b))
	for j, line := range b {
		positionsInB[line.Key] = append(positionsInB[line.Key], j)
	}

	// Pass 1: unique anchors (key count 1,1 across both sides).
	for i, line := range a {
		count := table[line.Key]
		if count.inA != 1 || count.inB != 1 {
			continue
		}
		j := positionsInB[line.Key][0]
		oldToNew[i] = j
		newToOld[j] = i
	}

	// Pass 2: greedy leftmost pairing of remaining duplicates.
	next := make(map[string]int, len(positionsInB))
	for i, line := range a {
		if oldToNew[i] != unlinked {
			continue
		}
		count := table[line.Key]
		if count.inA == 0 || count.inB == 0 {
			continue
		}
		queue := positionsInB[line.Key]
		cursor := next[line.Key]
		for cursor < len(queue) && newToOld[queue[cursor]] != unlinked {
			cursor++
		}
		next[line.Key] = cursor
		if cursor == len(queue) {
			continue // duplicates exhausted
		}
		j := queue[cursor]
		oldToNew[i] = j
		newToOld[j] = i
		next[line.Key] = cursor + 1
	}

	return oldToNew, newToOld
}

// =============================================================================
// ALIGNMENT BUILDER
// =============================================================================

// match records one matched pair in output order.
type match struct {
	resultIndex int // index of the Unchanged line in the output
	oldIndex    int // 0-based position in a
	newIndex    int // 0-based position in b
}

// buildAlignment walks b in order, emitting Unchanged lines at matched
// positions and Added lines at unmatched ones. Before each match it flushes
// pending positions of a (those before the matched index whose
// correspondence is empty or points behind the current position in b) as
// Deleted lines in ascending order, so deletions keep their original
// relative order. Positions of a linked to a later position in b are left
// pending; they surface as later matches (and typically as moves).
func buildAlignment(a, b []ComparableLine, oldToNew, newToOld []int) ([]DiffLine, []match) {
	lines := make([]DiffLine, 0, len(a)+len(b))
	matches := make([]match, 0, min(len(a), len(b)))
	consumed := make([]bool, len(a))

	// flushFrom is the lowest index of a that may still need flushing;
	// everything below it is consumed.
	flushFrom := 0

	flushDeletedBefore := func(i, j int) {
		for flushFrom < len(a) && consumed[flushFrom] {
			flushFrom++
		}
		for k := flushFrom; k < i; k++ {
			if consumed[k] {
				continue
			}
			if oldToNew[k] != unlinked && oldToNew[k] >= j {
				continue // matches later in b, keep pending
			}
			lines = append(lines, DiffLine{
				State: Deleted,
				Left:  &LineContent{Number: k + 1, Text: a[k].Text},
			})
			consumed[k] = true
		}
	}

	for j := range b {
		i := newToOld[j]
		if i != unlinked && oldToNew[i] == j && !consumed[i] {
			flushDeletedBefore(i, j)
			lines = append(lines, DiffLine{
				State: Unchanged,
				Left:  &LineContent{Number: i + 1, Text: a[i].Text},
				Right: &LineContent{Number: j + 1, Text: b[j].Text},
			})
			matches = append(matches, match{
				resultIndex: len(lines) - 1,
				oldIndex:    i,
				newIndex:    j,
			})
			consumed[i] = true
			continue
		}
		lines = append(lines, DiffLine{
			State: Added,
			Right: &LineContent{Number: j + 1, Text: b[j].Text},
		})
	}

	// Whatever is left of a was never matched: flush as Deleted in order.
	flushDeletedBefore(len(a), len(b))

	return lines, matches
}
