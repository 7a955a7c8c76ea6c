// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package source reads log files into line sequences and watches them for
// changes.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineSize bounds a single line; log lines beyond 1MB are rejected rather
// than silently truncated.
const maxLineSize = 1024 * 1024

// ReadLines reads path into a slice of lines. Line endings are removed and a
// trailing carriage return is stripped, so CRLF files compare equal to their
// LF counterparts. An empty file yields an empty (non-nil) slice.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
