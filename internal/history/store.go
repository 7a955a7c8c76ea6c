// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/logdiff/internal/compare"
)

// =============================================================================
// TYPES
// =============================================================================

// Run is one recorded comparison.
type Run struct {
	ID          string
	LeftPath    string
	RightPath   string
	Pattern     string
	Additions   int
	Deletions   int
	Moves       int
	Unchanged   int
	MovedBlocks int
	LeftLines   int
	RightLines  int
	Duration    time.Duration
	CreatedAt   time.Time
}

// PatternUse is one distinct pattern with usage data, most recent first.
type PatternUse struct {
	Pattern    string
	UseCount   int
	LastUsedAt time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store persists comparison history. Safe for concurrent use; SQLite access
// is serialized through a single connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if _, err := db.Exec(InitMetadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize metadata: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Record stores one completed comparison and updates pattern usage. Empty
// patterns are recorded on the run but not added to the pattern history.
func (s *Store) Record(ctx context.Context, result *compare.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stats := result.Diff.Statistics
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			id, left_path, right_path, pattern,
			additions, deletions, moves, unchanged, moved_blocks,
			left_lines, right_lines, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.RunID, result.LeftPath, result.RightPath, result.Pattern,
		stats.Additions, stats.Deletions, stats.Moves, stats.Unchanged,
		len(result.Diff.MovedBlocks), result.LeftLines, result.RightLines,
		result.Duration.Milliseconds(), result.ComputedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	if result.Pattern != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO patterns (pattern, use_count, last_used_at)
			VALUES (?, 1, ?)
			ON CONFLICT(pattern) DO UPDATE SET
				use_count = use_count + 1,
				last_used_at = excluded.last_used_at
		`, result.Pattern, result.ComputedAt.Unix())
		if err != nil {
			return fmt.Errorf("failed to record pattern: %w", err)
		}
	}

	return tx.Commit()
}

// Prune removes the oldest runs beyond max. A max of 0 keeps everything.
func (s *Store) Prune(ctx context.Context, max int) error {
	if max <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC, id LIMIT ?
		)
	`, max)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %w", err)
	}
	return nil
}

// Clear removes all recorded runs and patterns.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("failed to clear runs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM patterns"); err != nil {
		return fmt.Errorf("failed to clear patterns: %w", err)
	}

	return tx.Commit()
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, left_path, right_path, pattern,
		       additions, deletions, moves, unchanged, moved_blocks,
		       left_lines, right_lines, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs, createdAt int64
		if err := rows.Scan(&r.ID, &r.LeftPath, &r.RightPath, &r.Pattern,
			&r.Additions, &r.Deletions, &r.Moves, &r.Unchanged, &r.MovedBlocks,
			&r.LeftLines, &r.RightLines, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecentPatterns returns distinct patterns, most recently used first,
// backing the `history patterns` command.
func (s *Store) RecentPatterns(ctx context.Context, limit int) ([]PatternUse, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern, use_count, last_used_at
		FROM patterns
		ORDER BY last_used_at DESC, pattern
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	var patterns []PatternUse
	for rows.Next() {
		var p PatternUse
		var lastUsed int64
		if err := rows.Scan(&p.Pattern, &p.UseCount, &lastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}
		p.LastUsedAt = time.Unix(lastUsed, 0)
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// RunCount reports the number of recorded runs.
func (s *Store) RunCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
