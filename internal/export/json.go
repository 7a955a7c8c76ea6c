// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/diff"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports comparison results to JSON format.
// NOTE: JSON exports always include the complete result regardless of
// options, so the output is a faithful machine-readable record of the run.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// jsonDocument is the stable wire shape of an exported run.
type jsonDocument struct {
	RunID      string           `json:"run_id"`
	LeftPath   string           `json:"left_path"`
	RightPath  string           `json:"right_path"`
	Pattern    string           `json:"pattern,omitempty"`
	ComputedAt time.Time        `json:"computed_at"`
	DurationMs int64            `json:"duration_ms"`
	Statistics jsonStatistics   `json:"statistics"`
	Lines      []jsonLine       `json:"lines"`
	Blocks     []jsonMovedBlock `json:"moved_blocks,omitempty"`
}

type jsonStatistics struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Moves     int `json:"moves"`
	Unchanged int `json:"unchanged"`
}

type jsonLine struct {
	State     string    `json:"state"`
	Left      *jsonSide `json:"left,omitempty"`
	Right     *jsonSide `json:"right,omitempty"`
	MovedFrom int       `json:"moved_from,omitempty"`
	MovedTo   int       `json:"moved_to,omitempty"`
}

type jsonSide struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type jsonMovedBlock struct {
	SourceStart int `json:"source_start"`
	SourceEnd   int `json:"source_end"`
	DestStart   int `json:"dest_start"`
	DestEnd     int `json:"dest_end"`
}

// Export converts a comparison result to JSON format.
func (e *JSONExporter) Export(result *compare.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	doc := jsonDocument{
		RunID:      result.RunID,
		LeftPath:   result.LeftPath,
		RightPath:  result.RightPath,
		Pattern:    result.Pattern,
		ComputedAt: result.ComputedAt,
		DurationMs: result.Duration.Milliseconds(),
		Statistics: jsonStatistics{
			Additions: result.Diff.Statistics.Additions,
			Deletions: result.Diff.Statistics.Deletions,
			Moves:     result.Diff.Statistics.Moves,
			Unchanged: result.Diff.Statistics.Unchanged,
		},
		Lines: make([]jsonLine, 0, len(result.Diff.Lines)),
	}

	for _, line := range result.Diff.Lines {
		doc.Lines = append(doc.Lines, jsonLine{
			State:     stateLabel(line.State),
			Left:      sideOf(line.Left),
			Right:     sideOf(line.Right),
			MovedFrom: line.MovedFrom,
			MovedTo:   line.MovedTo,
		})
	}
	for _, block := range result.Diff.MovedBlocks {
		doc.Blocks = append(doc.Blocks, jsonMovedBlock{
			SourceStart: block.SourceStart,
			SourceEnd:   block.SourceEnd,
			DestStart:   block.DestStart,
			DestEnd:     block.DestEnd,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

func sideOf(content *diff.LineContent) *jsonSide {
	if content == nil {
		return nil
	}
	return &jsonSide{Number: content.Number, Text: content.Text}
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
