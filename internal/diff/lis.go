// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import "sort"

// =============================================================================
// MOVE CLASSIFIER
// =============================================================================

// classifyMoves reclassifies matched lines that fall outside the longest
// increasing subsequence of old-indices as Moved, and groups contiguous
// moved matches into blocks. The LIS is the stable backbone: the maximal set
// of matched lines that kept their relative order, and therefore did not
// move. Added/Deleted lines are never touched.
func classifyMoves(lines []DiffLine, matches []match) []MovedBlock {
	if len(matches) == 0 {
		return nil
	}

	sequence := make([]int, len(matches))
	for i, m := range matches {
		sequence[i] = m.oldIndex
	}
	inLIS := longestIncreasing(sequence)

	for i, m := range matches {
		if inLIS[i] {
			continue
		}
		line := &lines[m.resultIndex]
		line.State = Moved
		line.MovedFrom = m.oldIndex + 1
		line.MovedTo = m.newIndex + 1
	}

	return groupMovedBlocks(matches, inLIS)
}

// groupMovedBlocks scans matches in output order, extending a block while
// consecutive matches are both outside the LIS. A block closes on the next
// backbone match or at end of input, recording the min/max source and
// destination line numbers it spans.
func groupMovedBlocks(matches []match, inLIS []bool) []MovedBlock {
	var blocks []MovedBlock
	var current *MovedBlock

	for i, m := range matches {
		if inLIS[i] {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}
		src := m.oldIndex + 1
		dst := m.newIndex + 1
		if current == nil {
			current = &MovedBlock{
				SourceStart: src,
				SourceEnd:   src,
				DestStart:   dst,
				DestEnd:     dst,
			}
			continue
		}
		if src < current.SourceStart {
			current.SourceStart = src
		}
		if src > current.SourceEnd {
			current.SourceEnd = src
		}
		if dst < current.DestStart {
			current.DestStart = dst
		}
		if dst > current.DestEnd {
			current.DestEnd = dst
		}
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}

// =============================================================================
// LONGEST INCREASING SUBSEQUENCE
// =============================================================================

// longestIncreasing computes a longest strictly increasing subsequence of
// sequence via patience sorting and reports membership per position. For
// each achievable length the smallest possible tail value is kept; a new
// element replaces the first tail >= itself, located by binary search, and
// the subsequence is reconstructed through predecessor links. O(k log k).
func longestIncreasing(sequence []int) []bool {
	members := make([]bool, len(sequence))
	if len(sequence) == 0 {
		return members
	}

	// tails[l] is the index into sequence of the smallest tail of any
	// increasing subsequence of length l+1 seen so far.
	tails := make([]int, 0, len(sequence))
	prev := make([]int, len(sequence))

	for i, v := range sequence {
		pos := sort.Search(len(tails), func(t int) bool {
			return sequence[tails[t]] >= v
		})
		if pos > 0 {
			prev[i] = tails[pos-1]
		} else {
			prev[i] = -1
		}
		if pos == len(tails) {
			tails = append(tails, i)
		} else {
			tails[pos] = i
		}
	}

	for at := tails[len(tails)-1]; at >= 0; at = prev[at] {
		members[at] = true
	}
	return members
}
