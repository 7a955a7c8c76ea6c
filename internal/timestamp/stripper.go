// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timestamp derives comparison keys from log lines by stripping
// volatile timestamp content with a user-supplied regular expression.
//
// Patterns are compiled once and cached; the empty pattern is a documented
// no-op so callers need no special casing when stripping is disabled.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/jeranaias/logdiff/internal/diff"
)

// ErrInvalidPattern is returned (wrapped) when a pattern fails to compile.
// Use errors.Is to detect it.
var ErrInvalidPattern = errors.New("invalid timestamp pattern")

// Stripper removes volatile content from lines before comparison.
type Stripper interface {
	// Strip returns a copy of lines with every pattern match removed.
	// An empty pattern returns the lines unchanged.
	Strip(lines []string, pattern string) ([]string, error)
}

// =============================================================================
// REGEX STRIPPER
// =============================================================================

// RegexStripper implements Stripper with a concurrency-safe compiled-pattern
// cache. Safe for concurrent use.
type RegexStripper struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewStripper returns a RegexStripper with an empty cache.
func NewStripper() *RegexStripper {
	return &RegexStripper{cache: make(map[string]*regexp.Regexp)}
}

// Strip implements Stripper. Matches are replaced with the empty string, so
// a pattern that consumes trailing whitespace avoids double spaces in the
// result. Invalid patterns report an error without touching the cache.
func (s *RegexStripper) Strip(lines []string, pattern string) ([]string, error) {
	if pattern == "" {
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	}

	re, err := s.compile(pattern)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = re.ReplaceAllString(line, "")
	}
	return out, nil
}

// compile returns the cached regex for pattern, compiling and caching it on
// first use. Only successfully compiled patterns enter the cache.
func (s *RegexStripper) compile(pattern string) (*regexp.Regexp, error) {
	s.mu.RLock()
	re, ok := s.cache[pattern]
	s.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	s.mu.Lock()
	// Another goroutine may have compiled the same pattern meanwhile; keep
	// the first entry so cached handles stay stable.
	if cached, ok := s.cache[pattern]; ok {
		re = cached
	} else {
		s.cache[pattern] = re
	}
	s.mu.Unlock()
	return re, nil
}

// cacheLen reports the number of cached patterns, for tests.
func (s *RegexStripper) cacheLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// =============================================================================
// COMPARABLE CONSTRUCTION
// =============================================================================

// BuildComparable strips lines with pattern and pairs each original line with
// its stripped form as the comparison key. The returned slice parallels the
// input: position i holds the original text of lines[i] and its derived key.
func BuildComparable(s Stripper, lines []string, pattern string) ([]diff.ComparableLine, error) {
	keys, err := s.Strip(lines, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]diff.ComparableLine, len(lines))
	for i, line := range lines {
		out[i] = diff.NewComparableLine(line, keys[i])
	}
	return out, nil
}

// ValidatePattern reports whether pattern would be accepted by Strip. The
// empty pattern is valid.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return nil
}
