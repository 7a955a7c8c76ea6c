// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff.go - One-shot comparison command for logdiff.
//
// Prints a unified diff to stdout, or exports to a file when --format/-o
// ask for a document format. Colors follow TTY detection and NO_COLOR.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/config"
	"github.com/jeranaias/logdiff/internal/export"
	"github.com/jeranaias/logdiff/internal/history"
)

// HandleDiff runs a single comparison and prints or exports the result.
func HandleDiff(args Args) error {
	req, cfg, err := buildRequest(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := compare.Default().Run(ctx, req)
	if err != nil {
		return NewCommandError("diff", "run", "comparison failed", err)
	}

	recordRun(cfg, args, result)

	format := args.Format
	if format == "" {
		format = cfg.Export.Format
	}
	if args.JSON {
		format = "json"
	}

	// Document formats, or any explicit output directory, go to a file.
	if args.Output != "" || format == "html" {
		opts := export.DefaultOptions()
		if args.Output != "" {
			opts.OutputDir = args.Output
		}
		opts.Theme = cfg.UI.Theme
		exporter, err := export.ForFormat(format, opts)
		if err != nil {
			return NewValidationError("format", format, err.Error())
		}
		path, err := export.ExportToFile(result, exporter, opts)
		if err != nil {
			return NewCommandError("diff", "export", "write failed", err)
		}
		fmt.Println(path)
		return nil
	}

	if format == "json" {
		exporter, err := export.ForFormat("json", nil)
		if err != nil {
			return err
		}
		data, err := exporter.Export(result)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printTextDiff(args, result)
	return nil
}

// buildRequest loads the config and merges CLI overrides into a request.
func buildRequest(args Args) (compare.Request, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return compare.Request{}, nil, NewCommandError("diff", "load config", "configuration unusable", err)
	}

	left := args.LeftPath
	right := args.RightPath
	if left == "" {
		left = cfg.Compare.LeftPath
	}
	if right == "" {
		right = cfg.Compare.RightPath
	}
	if left == "" || right == "" {
		return compare.Request{}, nil, NewValidationErrorWithExample(
			"paths", "",
			"two files are required",
			"logdiff diff old.log new.log",
		)
	}

	pattern := cfg.Compare.Pattern
	if args.Pattern != "" {
		pattern = args.Pattern
	}

	return compare.Request{LeftPath: left, RightPath: right, Pattern: pattern}, cfg, nil
}

// printTextDiff writes the unified diff and summary to stdout.
func printTextDiff(args Args, result *compare.Result) {
	if !args.Quiet {
		body := compare.Unified(result.Diff.Lines)
		if ColorsEnabled() {
			body = colorizeUnified(body)
		}
		fmt.Println(body)
		fmt.Println()
	}
	fmt.Println(compare.Summary(result))
}

// colorizeUnified applies per-state colors to an already formatted
// unified diff.
func colorizeUnified(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = AddedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = DeletedStyle.Render(line)
		case strings.HasPrefix(line, "↔"):
			lines[i] = MovedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// recordRun persists the run unless history is off. Failures are reported
// on stderr in verbose mode only; they never fail the diff.
func recordRun(cfg *config.Config, args Args, result *compare.Result) {
	if args.NoHistory || !cfg.History.Enabled {
		return
	}

	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		verbosef(args, "history: %v", err)
		return
	}
	store, err := history.Open(dbPath)
	if err != nil {
		verbosef(args, "history: %v", err)
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Record(ctx, result); err != nil {
		verbosef(args, "history: %v", err)
		return
	}
	if err := store.Prune(ctx, cfg.History.MaxEntries); err != nil {
		verbosef(args, "history: %v", err)
	}
}
