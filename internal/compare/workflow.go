// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compare orchestrates the diff workflow: read both files, strip
// timestamps, compute the diff, and package the outcome for rendering,
// export, and history recording.
package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/logdiff/internal/diff"
	"github.com/jeranaias/logdiff/internal/source"
	"github.com/jeranaias/logdiff/internal/timestamp"
)

// =============================================================================
// REQUEST / RESULT
// =============================================================================

// Side identifies which input file an error concerns.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Request names the two files to compare and the timestamp pattern to strip
// before comparison. An empty Pattern disables stripping.
type Request struct {
	LeftPath  string
	RightPath string
	Pattern   string
}

// Result is one completed comparison.
type Result struct {
	RunID      string // Unique ID for this run, used by history and exports
	LeftPath   string
	RightPath  string
	Pattern    string
	Diff       *diff.DiffResult
	LeftLines  int // Input line counts, before stripping
	RightLines int
	ComputedAt time.Time
	Duration   time.Duration
}

// SourceError reports a file that could not be read, identifying the side.
type SourceError struct {
	Side Side
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read %s file %q: %v", e.Side, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// =============================================================================
// WORKFLOW
// =============================================================================

// Workflow runs comparisons with a fixed engine and stripper. Construct with
// NewWorkflow; the zero value is not usable.
type Workflow struct {
	engine   diff.Engine
	stripper timestamp.Stripper
}

// NewWorkflow creates a workflow around the given engine and stripper.
func NewWorkflow(engine diff.Engine, stripper timestamp.Stripper) *Workflow {
	return &Workflow{engine: engine, stripper: stripper}
}

// Default returns a workflow with the standard engine and a fresh stripper
// cache.
func Default() *Workflow {
	return NewWorkflow(diff.New(), timestamp.NewStripper())
}

// Run executes one comparison. Errors identify their stage: a *SourceError
// per unreadable side (left checked first), or a timestamp.ErrInvalidPattern
// wrap when the pattern does not compile. The context is checked between
// stages so a cancelled watch loop stops promptly on large inputs.
func (w *Workflow) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	// Validate the pattern before touching the filesystem, so a bad
	// pattern reports the same way regardless of file state.
	if err := timestamp.ValidatePattern(req.Pattern); err != nil {
		return nil, err
	}

	leftLines, err := source.ReadLines(req.LeftPath)
	if err != nil {
		return nil, &SourceError{Side: SideLeft, Path: req.LeftPath, Err: err}
	}
	rightLines, err := source.ReadLines(req.RightPath)
	if err != nil {
		return nil, &SourceError{Side: SideRight, Path: req.RightPath, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	left, err := timestamp.BuildComparable(w.stripper, leftLines, req.Pattern)
	if err != nil {
		return nil, err
	}
	right, err := timestamp.BuildComparable(w.stripper, rightLines, req.Pattern)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := w.engine.Compute(left, right)

	return &Result{
		RunID:      uuid.NewString(),
		LeftPath:   req.LeftPath,
		RightPath:  req.RightPath,
		Pattern:    req.Pattern,
		Diff:       result,
		LeftLines:  len(leftLines),
		RightLines: len(rightLines),
		ComputedAt: start,
		Duration:   time.Since(start),
	}, nil
}
