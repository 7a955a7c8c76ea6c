// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists completed comparison runs and timestamp patterns
// in a local SQLite database.
package history

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the run and pattern history
const Schema = `
-- Metadata table for schema version
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Runs table: one row per completed comparison
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,        -- Run UUID
    left_path TEXT NOT NULL,
    right_path TEXT NOT NULL,
    pattern TEXT NOT NULL,      -- Empty when stripping was disabled
    additions INTEGER NOT NULL,
    deletions INTEGER NOT NULL,
    moves INTEGER NOT NULL,
    unchanged INTEGER NOT NULL,
    moved_blocks INTEGER NOT NULL,
    left_lines INTEGER NOT NULL,
    right_lines INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at INTEGER NOT NULL -- Unix timestamp
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

-- Patterns table: distinct patterns with usage counts, for input history
CREATE TABLE IF NOT EXISTS patterns (
    pattern TEXT PRIMARY KEY,
    use_count INTEGER NOT NULL DEFAULT 0,
    last_used_at INTEGER NOT NULL
) WITHOUT ROWID;

CREATE INDEX IF NOT EXISTS idx_patterns_last_used ON patterns(last_used_at);
`

// InitMetadata initializes the metadata table with default values
const InitMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('created_at', strftime('%s', 'now'));
`
