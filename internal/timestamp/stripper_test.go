// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timestamp

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestStrip_ValidPattern(t *testing.T) {
	stripper := NewStripper()
	lines := []string{
		"[2023-10-27 10:00:00] INFO: System start",
		"DEBUG: No timestamp here",
		"[2023-10-27 10:00:01] WARN: System alert",
	}
	pattern := `\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `

	result, err := stripper.Strip(lines, pattern)
	if err != nil {
		t.Fatalf("Strip failed: %v", err)
	}

	want := []string{
		"INFO: System start",
		"DEBUG: No timestamp here",
		"WARN: System alert",
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("Expected %v, got %v", want, result)
	}
}

func TestStrip_InvalidPattern(t *testing.T) {
	stripper := NewStripper()

	_, err := stripper.Strip([]string{"line 1"}, "[")
	if err == nil {
		t.Fatal("Expected error for invalid pattern")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
	if stripper.cacheLen() != 0 {
		t.Errorf("Invalid pattern must not be cached, cache has %d entries", stripper.cacheLen())
	}
}

func TestStrip_EmptyPattern(t *testing.T) {
	stripper := NewStripper()
	lines := []string{"line 1", "line 2"}

	result, err := stripper.Strip(lines, "")
	if err != nil {
		t.Fatalf("Strip failed: %v", err)
	}
	if !reflect.DeepEqual(result, lines) {
		t.Errorf("Expected lines unchanged, got %v", result)
	}
	if stripper.cacheLen() != 0 {
		t.Error("Empty pattern must not be cached")
	}

	// The no-op path still returns a copy, not the caller's slice.
	result[0] = "mutated"
	if lines[0] != "line 1" {
		t.Error("Strip returned the input slice instead of a copy")
	}
}

func TestStrip_NoMatches(t *testing.T) {
	stripper := NewStripper()
	lines := []string{"line 1", "another line"}

	result, err := stripper.Strip(lines, "xyz")
	if err != nil {
		t.Fatalf("Strip failed: %v", err)
	}
	if !reflect.DeepEqual(result, lines) {
		t.Errorf("Expected lines unchanged, got %v", result)
	}
	if stripper.cacheLen() != 1 {
		t.Errorf("Expected pattern cached, cache has %d entries", stripper.cacheLen())
	}
}

func TestStrip_PatternCached(t *testing.T) {
	stripper := NewStripper()
	lines := []string{"[10:00] entry", "[10:01] another", "no timestamp"}
	pattern := `\[\d{2}:\d{2}\] `

	first, err := stripper.Strip(lines, pattern)
	if err != nil {
		t.Fatalf("Strip failed: %v", err)
	}
	if stripper.cacheLen() != 1 {
		t.Errorf("Expected 1 cached pattern, got %d", stripper.cacheLen())
	}

	second, err := stripper.Strip(lines, pattern)
	if err != nil {
		t.Fatalf("Strip failed: %v", err)
	}
	if stripper.cacheLen() != 1 {
		t.Errorf("Pattern should remain cached once, got %d entries", stripper.cacheLen())
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Cached pattern produced a different result")
	}
}

func TestStrip_ConcurrentUse(t *testing.T) {
	stripper := NewStripper()
	lines := []string{"[10:00] entry"}
	pattern := `\[\d{2}:\d{2}\] `

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := stripper.Strip(lines, pattern)
			if err != nil {
				t.Errorf("Strip failed: %v", err)
				return
			}
			if result[0] != "entry" {
				t.Errorf("Expected 'entry', got %q", result[0])
			}
		}()
	}
	wg.Wait()

	if stripper.cacheLen() != 1 {
		t.Errorf("Expected exactly 1 cached pattern, got %d", stripper.cacheLen())
	}
}

func TestBuildComparable(t *testing.T) {
	stripper := NewStripper()
	lines := []string{"[10:00] started", "plain"}

	comparable, err := BuildComparable(stripper, lines, `\[\d{2}:\d{2}\] `)
	if err != nil {
		t.Fatalf("BuildComparable failed: %v", err)
	}
	if len(comparable) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(comparable))
	}
	if comparable[0].Text != "[10:00] started" {
		t.Errorf("Display text disturbed: %q", comparable[0].Text)
	}
	if comparable[0].Key != "started" {
		t.Errorf("Expected stripped key 'started', got %q", comparable[0].Key)
	}
	if comparable[1].Text != "plain" || comparable[1].Key != "plain" {
		t.Errorf("Unmatched line should keep text as key: %+v", comparable[1])
	}
}

func TestBuildComparable_InvalidPattern(t *testing.T) {
	stripper := NewStripper()

	_, err := BuildComparable(stripper, []string{"x"}, "(")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{name: "empty", pattern: "", wantErr: false},
		{name: "literal", pattern: "abc", wantErr: false},
		{name: "timestamp", pattern: `\d{2}:\d{2}:\d{2}`, wantErr: false},
		{name: "unclosed class", pattern: "[", wantErr: true},
		{name: "unclosed group", pattern: "(", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePattern(tt.pattern)
			if tt.wantErr && err == nil {
				t.Error("Expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Expected ErrInvalidPattern, got %v", err)
			}
		})
	}
}
