// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff_test

import (
	"fmt"

	"github.com/jeranaias/logdiff/internal/diff"
)

func ExampleEngine_insertion() {
	engine := diff.New()
	left := []diff.ComparableLine{diff.Literal("alpha"), diff.Literal("gamma")}
	right := []diff.ComparableLine{diff.Literal("alpha"), diff.Literal("beta"), diff.Literal("gamma")}

	result := engine.Compute(left, right)
	for _, line := range result.Lines {
		text := ""
		if line.Right != nil {
			text = line.Right.Text
		} else if line.Left != nil {
			text = line.Left.Text
		}
		fmt.Printf("%s %s\n", line.State.Prefix(), text)
	}
	// Output:
	//   alpha
	// + beta
	//   gamma
}

func ExampleEngine_move() {
	engine := diff.New()
	left := []diff.ComparableLine{diff.Literal("a"), diff.Literal("b"), diff.Literal("c")}
	right := []diff.ComparableLine{diff.Literal("c"), diff.Literal("a"), diff.Literal("b")}

	result := engine.Compute(left, right)
	fmt.Println("moves:", result.Statistics.Moves)
	for _, block := range result.MovedBlocks {
		fmt.Printf("block: lines %d-%d -> %d-%d\n",
			block.SourceStart, block.SourceEnd, block.DestStart, block.DestEnd)
	}
	// Output:
	// moves: 1
	// block: lines 3-3 -> 1-1
}

func ExampleNewComparableLine() {
	// Keys carry the comparison; text is only for display. Lines whose
	// timestamps were stripped into identical keys compare equal.
	a := diff.NewComparableLine("2024-01-01 server started", "server started")
	b := diff.NewComparableLine("2024-06-30 server started", "server started")
	fmt.Println(a.Equal(b))
	// Output:
	// true
}
