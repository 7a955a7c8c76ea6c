// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/diff"
)

func sampleResult() *compare.Result {
	engine := diff.New()
	left := []diff.ComparableLine{diff.Literal("alpha"), diff.Literal("gamma"), diff.Literal("delta")}
	right := []diff.ComparableLine{diff.Literal("alpha"), diff.Literal("beta"), diff.Literal("gamma")}

	return &compare.Result{
		RunID:      "test-run",
		LeftPath:   "/var/log/left.log",
		RightPath:  "/var/log/right.log",
		Pattern:    `\d{2}:\d{2}`,
		Diff:       engine.Compute(left, right),
		LeftLines:  3,
		RightLines: 3,
		ComputedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Duration:   5 * time.Millisecond,
	}
}

func TestTextExporter(t *testing.T) {
	exporter := NewTextExporter(nil)

	content, err := exporter.Export(sampleResult())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := string(content)

	if !strings.Contains(out, "# left:    /var/log/left.log") {
		t.Error("Expected left path in metadata header")
	}
	if !strings.Contains(out, `# pattern: \d{2}:\d{2}`) {
		t.Error("Expected pattern in metadata header")
	}
	if !strings.Contains(out, "+ beta") {
		t.Error("Expected added line in body")
	}
	if !strings.Contains(out, "- delta") {
		t.Error("Expected deleted line in body")
	}

	if exporter.FileExtension() != ".txt" {
		t.Errorf("Expected .txt, got %s", exporter.FileExtension())
	}
}

func TestTextExporter_NoMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeMetadata = false
	exporter := NewTextExporter(opts)

	content, err := exporter.Export(sampleResult())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.Contains(string(content), "# left:") {
		t.Error("Metadata header should be omitted")
	}
}

func TestJSONExporter(t *testing.T) {
	exporter := NewJSONExporter(nil)

	content, err := exporter.Export(sampleResult())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("Export produced invalid JSON: %v", err)
	}

	if doc["run_id"] != "test-run" {
		t.Errorf("Expected run_id 'test-run', got %v", doc["run_id"])
	}
	stats, ok := doc["statistics"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected statistics object")
	}
	if stats["additions"] != float64(1) {
		t.Errorf("Expected 1 addition, got %v", stats["additions"])
	}
	lines, ok := doc["lines"].([]interface{})
	if !ok || len(lines) == 0 {
		t.Fatal("Expected non-empty lines array")
	}

	if exporter.MimeType() != "application/json" {
		t.Errorf("Unexpected MIME type %s", exporter.MimeType())
	}
}

func TestHTMLExporter(t *testing.T) {
	exporter := NewHTMLExporter(nil)

	content, err := exporter.Export(sampleResult())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := string(content)

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("Expected HTML doctype")
	}
	if !strings.Contains(out, "dark-theme") {
		t.Error("Expected default dark theme")
	}
	if !strings.Contains(out, `class="added"`) {
		t.Error("Expected added row class")
	}
	if !strings.Contains(out, "beta") {
		t.Error("Expected added text in output")
	}
}

func TestHTMLExporter_EscapesContent(t *testing.T) {
	exporter := NewHTMLExporter(nil)
	result := sampleResult()
	result.Diff = diff.New().Compute(
		nil,
		[]diff.ComparableLine{diff.Literal(`<script>alert("x")</script>`)},
	)

	content, err := exporter.Export(result)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := string(content)

	if strings.Contains(out, `<script>alert`) {
		t.Error("Line content must be HTML-escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("Expected escaped script tag")
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "text", wantExt: ".txt"},
		{format: "", wantExt: ".txt"},
		{format: "json", wantExt: ".json"},
		{format: "html", wantExt: ".html"},
		{format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		exporter, err := ForFormat(tt.format, nil)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q): expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q) failed: %v", tt.format, err)
			continue
		}
		if exporter.FileExtension() != tt.wantExt {
			t.Errorf("ForFormat(%q): expected %s, got %s", tt.format, tt.wantExt, exporter.FileExtension())
		}
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir
	opts.OpenAfterExport = false

	path, err := ExportToFile(sampleResult(), NewTextExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	if !strings.HasPrefix(path, dir) {
		t.Errorf("Output not in requested directory: %s", path)
	}
	if !strings.HasSuffix(path, ".txt") {
		t.Errorf("Expected .txt output, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Exported file is empty")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "server.log", want: "server.log"},
		{in: "a/b\\c:d", want: "a-b-c-d"},
		{in: "with space", want: "with_space"},
		{in: "", want: "diff"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
