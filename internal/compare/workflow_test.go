// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/logdiff/internal/diff"
	"github.com/jeranaias/logdiff/internal/timestamp"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_BasicDiff(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "alpha\ngamma\n")
	right := writeLog(t, dir, "right.log", "alpha\nbeta\ngamma\n")

	result, err := Default().Run(context.Background(), Request{
		LeftPath:  left,
		RightPath: right,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Diff.Statistics.Additions)
	assert.Equal(t, 0, result.Diff.Statistics.Deletions)
	assert.Equal(t, 2, result.LeftLines)
	assert.Equal(t, 3, result.RightLines)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, left, result.LeftPath)
	assert.Equal(t, right, result.RightPath)
}

func TestRun_TimestampStripping(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "[10:00:00] server started\n[10:00:01] ready\n")
	right := writeLog(t, dir, "right.log", "[11:30:00] server started\n[11:30:02] ready\n")

	result, err := Default().Run(context.Background(), Request{
		LeftPath:  left,
		RightPath: right,
		Pattern:   `\[\d{2}:\d{2}:\d{2}\] `,
	})
	require.NoError(t, err)

	// Identical apart from timestamps: no changes, original text preserved.
	assert.Equal(t, 0, result.Diff.Statistics.TotalChanges())
	require.Len(t, result.Diff.Lines, 2)
	assert.Equal(t, "[10:00:00] server started", result.Diff.Lines[0].Left.Text)
	assert.Equal(t, "[11:30:00] server started", result.Diff.Lines[0].Right.Text)
}

func TestRun_UnreadableLeft(t *testing.T) {
	dir := t.TempDir()
	right := writeLog(t, dir, "right.log", "x\n")

	_, err := Default().Run(context.Background(), Request{
		LeftPath:  filepath.Join(dir, "absent.log"),
		RightPath: right,
	})
	require.Error(t, err)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, SideLeft, srcErr.Side)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UnreadableRight(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "x\n")

	_, err := Default().Run(context.Background(), Request{
		LeftPath:  left,
		RightPath: filepath.Join(dir, "absent.log"),
	})

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, SideRight, srcErr.Side)
}

func TestRun_InvalidPattern(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "x\n")
	right := writeLog(t, dir, "right.log", "x\n")

	_, err := Default().Run(context.Background(), Request{
		LeftPath:  left,
		RightPath: right,
		Pattern:   "[",
	})
	assert.ErrorIs(t, err, timestamp.ErrInvalidPattern)
}

func TestRun_InvalidPatternBeatsMissingFile(t *testing.T) {
	dir := t.TempDir()

	// Pattern validation runs before any file access.
	_, err := Default().Run(context.Background(), Request{
		LeftPath:  filepath.Join(dir, "absent.log"),
		RightPath: filepath.Join(dir, "also-absent.log"),
		Pattern:   "(",
	})
	assert.ErrorIs(t, err, timestamp.ErrInvalidPattern)
}

func TestRun_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "x\n")
	right := writeLog(t, dir, "right.log", "y\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Default().Run(ctx, Request{LeftPath: left, RightPath: right})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyFiles(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "")
	right := writeLog(t, dir, "right.log", "")

	result, err := Default().Run(context.Background(), Request{
		LeftPath:  left,
		RightPath: right,
	})
	require.NoError(t, err)
	assert.True(t, result.Diff.IsEmpty())
	assert.Equal(t, 0, result.LeftLines)
	assert.Equal(t, 0, result.RightLines)
}

func TestRun_DistinctRunIDs(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "a\n")
	right := writeLog(t, dir, "right.log", "a\n")
	workflow := Default()

	first, err := workflow.Run(context.Background(), Request{LeftPath: left, RightPath: right})
	require.NoError(t, err)
	second, err := workflow.Run(context.Background(), Request{LeftPath: left, RightPath: right})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestNewWorkflow_CustomEngine(t *testing.T) {
	dir := t.TempDir()
	left := writeLog(t, dir, "left.log", "a\n")
	right := writeLog(t, dir, "right.log", "b\n")

	engine := &countingEngine{inner: diff.New()}
	workflow := NewWorkflow(engine, timestamp.NewStripper())

	_, err := workflow.Run(context.Background(), Request{LeftPath: left, RightPath: right})
	require.NoError(t, err)
	assert.Equal(t, 1, engine.calls)
}

type countingEngine struct {
	inner diff.Engine
	calls int
}

func (c *countingEngine) Compute(a, b []diff.ComparableLine) *diff.DiffResult {
	c.calls++
	return c.inner.Compute(a, b)
}

func TestSourceError_Message(t *testing.T) {
	err := &SourceError{Side: SideLeft, Path: "/tmp/x.log", Err: errors.New("permission denied")}
	assert.Contains(t, err.Error(), "left")
	assert.Contains(t, err.Error(), "/tmp/x.log")
	assert.Contains(t, err.Error(), "permission denied")
}
