// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/diff"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(id, pattern string) *compare.Result {
	return &compare.Result{
		RunID:     id,
		LeftPath:  "/var/log/a.log",
		RightPath: "/var/log/b.log",
		Pattern:   pattern,
		Diff: &diff.DiffResult{
			Statistics: diff.DiffStatistics{
				Additions: 3,
				Deletions: 1,
				Moves:     2,
				Unchanged: 40,
			},
			MovedBlocks: []diff.MovedBlock{{SourceStart: 5, SourceEnd: 6, DestStart: 1, DestEnd: 2}},
		},
		LeftLines:  43,
		RightLines: 45,
		ComputedAt: time.Now(),
		Duration:   12 * time.Millisecond,
	}
}

func TestStore_RecordAndRead(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, sampleResult("run-1", `\d{2}:\d{2}`)))

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "/var/log/a.log", run.LeftPath)
	assert.Equal(t, "/var/log/b.log", run.RightPath)
	assert.Equal(t, `\d{2}:\d{2}`, run.Pattern)
	assert.Equal(t, 3, run.Additions)
	assert.Equal(t, 1, run.Deletions)
	assert.Equal(t, 2, run.Moves)
	assert.Equal(t, 40, run.Unchanged)
	assert.Equal(t, 1, run.MovedBlocks)
	assert.Equal(t, 43, run.LeftLines)
	assert.Equal(t, 45, run.RightLines)
	assert.Equal(t, 12*time.Millisecond, run.Duration)
}

func TestStore_PatternUpsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	pattern := `\[\d{2}:\d{2}:\d{2}\] `
	require.NoError(t, store.Record(ctx, sampleResult("run-1", pattern)))
	require.NoError(t, store.Record(ctx, sampleResult("run-2", pattern)))
	require.NoError(t, store.Record(ctx, sampleResult("run-3", `other`)))

	patterns, err := store.RecentPatterns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	byPattern := make(map[string]PatternUse)
	for _, p := range patterns {
		byPattern[p.Pattern] = p
	}
	assert.Equal(t, 2, byPattern[pattern].UseCount)
	assert.Equal(t, 1, byPattern["other"].UseCount)
}

func TestStore_EmptyPatternNotInHistory(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, sampleResult("run-1", "")))

	patterns, err := store.RecentPatterns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, patterns)

	// The run itself is still recorded.
	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Empty(t, runs[0].Pattern)
}

func TestStore_RecentRunsOrderedNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		result := sampleResult(fmt.Sprintf("run-%d", i), "")
		result.ComputedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Record(ctx, result))
	}

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "run-0", runs[2].ID)
}

func TestStore_Prune(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		result := sampleResult(fmt.Sprintf("run-%02d", i), "")
		result.ComputedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Record(ctx, result))
	}

	require.NoError(t, store.Prune(ctx, 3))

	count, err := store.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The newest three survive.
	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-09", runs[0].ID)
	assert.Equal(t, "run-07", runs[2].ID)
}

func TestStore_PruneZeroKeepsAll(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, sampleResult("run-1", "")))
	require.NoError(t, store.Prune(ctx, 0))

	count, err := store.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, sampleResult("run-1", "pat")))
	require.NoError(t, store.Clear(ctx))

	count, err := store.RunCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	patterns, err := store.RecentPatterns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestStore_ReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, sampleResult("run-1", "pat")))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.RecentRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
