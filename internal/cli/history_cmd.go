// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Run history command for logdiff.
//
// Usage:
//   logdiff history                 List recent runs
//   logdiff history list --limit N  List the N most recent runs
//   logdiff history patterns        Most used timestamp patterns
//   logdiff history clear --confirm Delete all recorded runs
//   logdiff history count           Number of recorded runs
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jeranaias/logdiff/internal/config"
	"github.com/jeranaias/logdiff/internal/history"
)

// HandleHistory dispatches the history subcommands.
func HandleHistory(args Args) error {
	parser := NewArgParser(args.Raw)

	cfg, err := config.Load()
	if err != nil {
		return NewCommandError("history", "load config", "configuration unusable", err)
	}
	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		return NewCommandError("history", "open", "cannot resolve database path", err)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return NewCommandError("history", "open", "cannot open database", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch parser.Subcommand() {
	case "", "list":
		return handleHistoryList(ctx, store, parser, args)
	case "patterns":
		return handleHistoryPatterns(ctx, store, parser, args)
	case "clear":
		return handleHistoryClear(ctx, store, parser)
	case "count":
		return handleHistoryCount(ctx, store, args)
	default:
		return NewValidationErrorWithExample(
			"subcommand", parser.Subcommand(),
			"unknown history subcommand",
			"logdiff history [list|patterns|clear|count]",
		)
	}
}

func handleHistoryList(ctx context.Context, store *history.Store, parser *ArgParser, args Args) error {
	limit := parser.FlagIntOrDefault("limit", 20)

	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return NewCommandError("history", "list", "query failed", err)
	}

	if args.JSON || parser.BoolFlag("json") {
		return outputJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Println(DimStyle.Render("no recorded runs"))
		return nil
	}

	fmt.Println(TitleStyle.Render("Recent runs"))
	for _, run := range runs {
		fmt.Printf("%s  %s\n",
			DimStyle.Render(formatAge(run.CreatedAt)),
			ValueStyle.Render(fmt.Sprintf("%s vs %s", run.LeftPath, run.RightPath)))
		fmt.Printf("    %s %s %s  %s %s\n",
			SuccessStyle.Render(fmt.Sprintf("+%d", run.Additions)),
			ErrorStyle.Render(fmt.Sprintf("-%d", run.Deletions)),
			WarningStyle.Render(fmt.Sprintf("↔%d", run.Moves)),
			DimStyle.Render(formatDurationShort(run.Duration)),
			DimStyle.Render(run.Pattern))
	}
	return nil
}

func handleHistoryPatterns(ctx context.Context, store *history.Store, parser *ArgParser, args Args) error {
	limit := parser.FlagIntOrDefault("limit", 10)

	patterns, err := store.RecentPatterns(ctx, limit)
	if err != nil {
		return NewCommandError("history", "patterns", "query failed", err)
	}

	if args.JSON || parser.BoolFlag("json") {
		return outputJSON(patterns)
	}

	if len(patterns) == 0 {
		fmt.Println(DimStyle.Render("no recorded patterns"))
		return nil
	}

	fmt.Println(TitleStyle.Render("Timestamp patterns"))
	for _, p := range patterns {
		fmt.Printf("%s  %s\n",
			LabelStyle.Render(fmt.Sprintf("%d uses", p.UseCount)),
			ValueStyle.Render(p.Pattern))
	}
	return nil
}

func handleHistoryClear(ctx context.Context, store *history.Store, parser *ArgParser) error {
	if !parser.BoolFlag("confirm") {
		return NewValidationErrorWithExample(
			"confirm", "",
			"clearing history is irreversible",
			"logdiff history clear --confirm",
		)
	}

	if err := store.Clear(ctx); err != nil {
		return NewCommandError("history", "clear", "delete failed", err)
	}
	fmt.Println(SuccessStyle.Render("history cleared"))
	return nil
}

func handleHistoryCount(ctx context.Context, store *history.Store, args Args) error {
	count, err := store.RunCount(ctx)
	if err != nil {
		return NewCommandError("history", "count", "query failed", err)
	}

	if args.JSON {
		return outputJSON(map[string]int{"runs": count})
	}
	fmt.Printf("%d recorded runs\n", count)
	return nil
}
