// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/logdiff/internal/diff"
)

func sampleLines() []diff.DiffLine {
	return []diff.DiffLine{
		{
			State: diff.Unchanged,
			Left:  &diff.LineContent{Number: 1, Text: "alpha"},
			Right: &diff.LineContent{Number: 1, Text: "alpha"},
		},
		{
			State: diff.Added,
			Right: &diff.LineContent{Number: 2, Text: "beta"},
		},
		{
			State: diff.Deleted,
			Left:  &diff.LineContent{Number: 2, Text: "old"},
		},
		{
			State:     diff.Moved,
			Left:      &diff.LineContent{Number: 3, Text: "gamma"},
			Right:     &diff.LineContent{Number: 3, Text: "gamma"},
			MovedFrom: 3,
			MovedTo:   3,
		},
	}
}

func TestSideBySide(t *testing.T) {
	left, right := SideBySide(sampleLines())

	leftRows := strings.Split(left, "\n")
	rightRows := strings.Split(right, "\n")
	assert.Len(t, leftRows, 4)
	assert.Len(t, rightRows, 4)

	// Panes stay row-aligned: empty sides render the prefix alone.
	assert.Equal(t, "  alpha", leftRows[0])
	assert.Equal(t, "  alpha", rightRows[0])
	assert.Equal(t, "+ ", leftRows[1])
	assert.Equal(t, "+ beta", rightRows[1])
	assert.Equal(t, "- old", leftRows[2])
	assert.Equal(t, "- ", rightRows[2])
	assert.Equal(t, "↔ gamma", leftRows[3])
	assert.Equal(t, "↔ gamma", rightRows[3])
}

func TestSideBySide_Empty(t *testing.T) {
	left, right := SideBySide(nil)
	assert.Empty(t, left)
	assert.Empty(t, right)
}

func TestUnified(t *testing.T) {
	out := Unified(sampleLines())

	assert.Contains(t, out, "  alpha\n")
	assert.Contains(t, out, "+ beta\n")
	assert.Contains(t, out, "- old\n")
	assert.Contains(t, out, "↔ gamma (line 3 -> 3)\n")
}

func TestSummary(t *testing.T) {
	result := &Result{
		Diff: &diff.DiffResult{
			Statistics: diff.DiffStatistics{
				Additions: 2,
				Deletions: 1,
				Moves:     3,
				Unchanged: 10,
			},
			MovedBlocks: []diff.MovedBlock{{}, {}},
		},
		Duration: 1500 * time.Microsecond,
	}

	out := Summary(result)
	assert.Contains(t, out, "+2")
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "↔3")
	assert.Contains(t, out, "=10")
	assert.Contains(t, out, "2 blocks")
}
